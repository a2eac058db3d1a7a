package factory

import (
	"time"

	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/savings_goal_repository"
	controllers "github.com/anuntech/smartspend-backend/internal/presentation/controllers/savings"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateSavingsGoalController(db *mongo.Database, location *time.Location) *controllers.CreateSavingsGoalController {
	createSavingsGoal := savings_goal_repository.NewCreateSavingsGoalRepository(db)
	return controllers.NewCreateSavingsGoalController(createSavingsGoal, location)
}

func MakeGetSavingsGoalsController(db *mongo.Database) *controllers.GetSavingsGoalsController {
	findSavingsGoals := savings_goal_repository.NewFindSavingsGoalsRepository(db)
	return controllers.NewGetSavingsGoalsController(findSavingsGoals)
}

func MakeGetSavingsGoalByIdController(db *mongo.Database) *controllers.GetSavingsGoalByIdController {
	findSavingsGoalById := savings_goal_repository.NewFindSavingsGoalByIdRepository(db)
	return controllers.NewGetSavingsGoalByIdController(findSavingsGoalById)
}

func MakeUpdateSavingsGoalController(db *mongo.Database, location *time.Location) *controllers.UpdateSavingsGoalController {
	updateSavingsGoal := savings_goal_repository.NewUpdateSavingsGoalRepository(db)
	return controllers.NewUpdateSavingsGoalController(updateSavingsGoal, location)
}

func MakeDeleteSavingsGoalController(db *mongo.Database) *controllers.DeleteSavingsGoalController {
	deleteSavingsGoal := savings_goal_repository.NewDeleteSavingsGoalRepository(db)
	return controllers.NewDeleteSavingsGoalController(deleteSavingsGoal)
}

func MakeContributeSavingsGoalController(db *mongo.Database) *controllers.ContributeSavingsGoalController {
	updateSavingsGoal := savings_goal_repository.NewUpdateSavingsGoalRepository(db)
	return controllers.NewContributeSavingsGoalController(updateSavingsGoal)
}
