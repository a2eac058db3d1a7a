package factory

import (
	"time"

	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/expense_repository"
	"github.com/anuntech/smartspend-backend/internal/infra/db/redis_repository"
	controllers "github.com/anuntech/smartspend-backend/internal/presentation/controllers/expense"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateExpenseController(db *mongo.Database, location *time.Location) *controllers.CreateExpenseController {
	createExpense := expense_repository.NewCreateExpenseRepository(db)
	return controllers.NewCreateExpenseController(createExpense, location)
}

func MakeGetExpensesController(db *mongo.Database) *controllers.GetExpensesController {
	findExpenses := expense_repository.NewFindExpensesRepository(db)
	return controllers.NewGetExpensesController(findExpenses)
}

func MakeGetExpenseByIdController(db *mongo.Database) *controllers.GetExpenseByIdController {
	findExpenseById := expense_repository.NewFindExpenseByIdRepository(db)
	return controllers.NewGetExpenseByIdController(findExpenseById)
}

func MakeUpdateExpenseController(db *mongo.Database, location *time.Location) *controllers.UpdateExpenseController {
	updateExpense := expense_repository.NewUpdateExpenseRepository(db)
	return controllers.NewUpdateExpenseController(updateExpense, location)
}

func MakeDeleteExpenseController(db *mongo.Database) *controllers.DeleteExpenseController {
	deleteExpense := expense_repository.NewDeleteExpenseRepository(db)
	return controllers.NewDeleteExpenseController(deleteExpense)
}

func MakeExportExpensesController(db *mongo.Database, client *redis.Client, ttl time.Duration) *controllers.ExportExpensesController {
	findExpenses := expense_repository.NewFindExpensesRepository(db)
	saveExport := redis_repository.NewSaveExportRepository(client)
	return controllers.NewExportExpensesController(findExpenses, saveExport, ttl)
}

func MakeDownloadExportController(client *redis.Client) *controllers.DownloadExportController {
	findExport := redis_repository.NewFindExportRepository(client)
	return controllers.NewDownloadExportController(findExport)
}
