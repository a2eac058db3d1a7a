package factory

import (
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/calculations"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/budget_repository"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/expense_repository"
	controllers "github.com/anuntech/smartspend-backend/internal/presentation/controllers/budget"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateBudgetController(db *mongo.Database) *controllers.CreateBudgetController {
	createBudget := budget_repository.NewCreateBudgetRepository(db)
	return controllers.NewCreateBudgetController(createBudget)
}

func MakeGetBudgetsController(db *mongo.Database) *controllers.GetBudgetsController {
	findBudgets := budget_repository.NewFindBudgetsRepository(db)
	return controllers.NewGetBudgetsController(findBudgets)
}

func MakeGetBudgetByIdController(db *mongo.Database) *controllers.GetBudgetByIdController {
	findBudgetById := budget_repository.NewFindBudgetByIdRepository(db)
	return controllers.NewGetBudgetByIdController(findBudgetById)
}

func MakeUpdateBudgetController(db *mongo.Database) *controllers.UpdateBudgetController {
	updateBudget := budget_repository.NewUpdateBudgetRepository(db)
	return controllers.NewUpdateBudgetController(updateBudget)
}

func MakeDeleteBudgetController(db *mongo.Database) *controllers.DeleteBudgetController {
	deleteBudget := budget_repository.NewDeleteBudgetRepository(db)
	return controllers.NewDeleteBudgetController(deleteBudget)
}

// MakeSpendAggregator builds the recomputation shared by the HTTP route and
// the recalculate command. Windows are anchored to now in location.
func MakeSpendAggregator(db *mongo.Database, location *time.Location, concurrency int) *calculations.SpendAggregator {
	findBudgets := budget_repository.NewFindBudgetsRepository(db)
	findExpenses := expense_repository.NewFindExpensesRepository(db)
	updateBudget := budget_repository.NewUpdateBudgetRepository(db)
	now := func() time.Time {
		return time.Now().In(location)
	}
	return calculations.NewSpendAggregator(findBudgets, findExpenses, updateBudget, now, concurrency)
}

func MakeCalculateBudgetsController(db *mongo.Database, location *time.Location, concurrency int) *controllers.CalculateBudgetsController {
	return controllers.NewCalculateBudgetsController(MakeSpendAggregator(db, location, concurrency))
}
