package expense

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newCreateController(store *memoryExpenses) *CreateExpenseController {
	c := NewCreateExpenseController(store, time.UTC)
	c.Now = func() time.Time { return fixedNow }
	return c
}

func TestCreateExpense(t *testing.T) {
	store := &memoryExpenses{}
	response := newCreateController(store).Handle(newRequest(http.MethodPost, "/api/expenses",
		`{"category":" Food ","amount":12.5,"description":"lunch","date":"2024-03-10"}`, "owner-1"))

	require.Equal(t, http.StatusCreated, response.StatusCode)
	created := decodeBody[models.Expense](t, response)
	assert.Equal(t, "Food", created.Category)
	assert.Equal(t, "owner-1", created.OwnerId)
	assert.Equal(t, 12.5, created.Amount)
	assert.True(t, created.Date.Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)))
	require.Len(t, store.records, 1)
	assert.Equal(t, "food", store.records[0].CategoryKey)
}

func TestCreateExpenseDefaultsDateToNow(t *testing.T) {
	store := &memoryExpenses{}
	response := newCreateController(store).Handle(newRequest(http.MethodPost, "/api/expenses",
		`{"category":"Food","amount":3,"description":"coffee"}`, "owner-1"))

	require.Equal(t, http.StatusCreated, response.StatusCode)
	assert.True(t, store.records[0].Date.Equal(fixedNow))
}

func TestCreateExpenseRejectsInvalidBodies(t *testing.T) {
	cases := map[string]string{
		"malformed json":    `{"category":`,
		"missing category":  `{"amount":3,"description":"x"}`,
		"blank category":    `{"category":"   ","amount":3,"description":"x"}`,
		"zero amount":       `{"category":"Food","amount":0,"description":"x"}`,
		"negative amount":   `{"category":"Food","amount":-4,"description":"x"}`,
		"missing desc":      `{"category":"Food","amount":4}`,
		"bad date":          `{"category":"Food","amount":4,"description":"x","date":"yesterday"}`,
		"category too long": `{"category":"` + strings.Repeat("a", 101) + `","amount":4,"description":"x"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			store := &memoryExpenses{}
			response := newCreateController(store).Handle(newRequest(http.MethodPost, "/api/expenses", body, "owner-1"))
			assert.Equal(t, http.StatusBadRequest, response.StatusCode)
			assert.Empty(t, store.records)
		})
	}
}

func TestCreateExpenseValidationMessageUsesJsonNames(t *testing.T) {
	response := newCreateController(&memoryExpenses{}).Handle(newRequest(http.MethodPost, "/api/expenses",
		`{"category":"Food","description":"x"}`, "owner-1"))

	require.Equal(t, http.StatusBadRequest, response.StatusCode)
	message := decodeBody[presentationProtocols.ErrorResponse](t, response)
	assert.Contains(t, message.Message, "amount")
}

func TestCreateExpenseRequiresOwner(t *testing.T) {
	response := newCreateController(&memoryExpenses{}).Handle(newRequest(http.MethodPost, "/api/expenses",
		`{"category":"Food","amount":3,"description":"coffee"}`, ""))

	require.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Equal(t, "ownerId is required", decodeBody[presentationProtocols.ErrorResponse](t, response).Message)
}

func TestCreateExpenseStoreFailure(t *testing.T) {
	response := newCreateController(&memoryExpenses{err: errStore}).Handle(newRequest(http.MethodPost, "/api/expenses",
		`{"category":"Food","amount":3,"description":"coffee"}`, "owner-1"))

	require.Equal(t, http.StatusInternalServerError, response.StatusCode)
	message := decodeBody[presentationProtocols.ErrorResponse](t, response)
	assert.NotContains(t, message.Message, errStore.Error())
}

func seeded() (*memoryExpenses, models.Expense) {
	store := &memoryExpenses{}
	saved, _ := store.Create(context.Background(), &models.Expense{
		Category:    "Food",
		Amount:      10,
		Date:        fixedNow,
		Description: "groceries",
		OwnerId:     "owner-1",
	})
	_, _ = store.Create(context.Background(), &models.Expense{Category: "Rent", Amount: 900, Date: fixedNow, Description: "rent", OwnerId: "owner-2"})
	return store, *saved
}

func TestGetExpensesIsOwnerScoped(t *testing.T) {
	store, saved := seeded()
	response := NewGetExpensesController(store).Handle(newRequest(http.MethodGet, "/api/expenses", "", "owner-1"))

	require.Equal(t, http.StatusOK, response.StatusCode)
	found := decodeBody[[]models.Expense](t, response)
	require.Len(t, found, 1)
	assert.Equal(t, saved.Id, found[0].Id)
}

func TestGetExpenseById(t *testing.T) {
	store, saved := seeded()
	controller := NewGetExpenseByIdController(expenseById{store})

	response := controller.Handle(withPathValue(newRequest(http.MethodGet, "/api/expenses/x", "", "owner-1"), "expenseId", saved.Id.Hex()))
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "groceries", decodeBody[models.Expense](t, response).Description)

	response = controller.Handle(withPathValue(newRequest(http.MethodGet, "/api/expenses/x", "", "owner-2"), "expenseId", saved.Id.Hex()))
	assert.Equal(t, http.StatusNotFound, response.StatusCode)

	response = controller.Handle(withPathValue(newRequest(http.MethodGet, "/api/expenses/x", "", "owner-1"), "expenseId", "not-an-id"))
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestUpdateExpenseIsPartial(t *testing.T) {
	store, saved := seeded()
	controller := NewUpdateExpenseController(store, time.UTC)

	response := controller.Handle(withPathValue(newRequest(http.MethodPut, "/api/expenses/x", `{"amount":42}`, "owner-1"), "expenseId", saved.Id.Hex()))

	require.Equal(t, http.StatusOK, response.StatusCode)
	updated := decodeBody[models.Expense](t, response)
	assert.Equal(t, 42.0, updated.Amount)
	assert.Equal(t, "Food", updated.Category)
	assert.Equal(t, "groceries", updated.Description)
}

func TestUpdateExpenseValidatesPresentFields(t *testing.T) {
	store, saved := seeded()
	controller := NewUpdateExpenseController(store, time.UTC)

	for _, body := range []string{`{"amount":0}`, `{"category":""}`, `{"date":"nope"}`} {
		response := controller.Handle(withPathValue(newRequest(http.MethodPut, "/api/expenses/x", body, "owner-1"), "expenseId", saved.Id.Hex()))
		assert.Equal(t, http.StatusBadRequest, response.StatusCode, body)
	}
	assert.Equal(t, 10.0, store.records[0].Amount)
}

func TestUpdateExpenseNotFound(t *testing.T) {
	store, _ := seeded()
	response := NewUpdateExpenseController(store, time.UTC).Handle(withPathValue(
		newRequest(http.MethodPut, "/api/expenses/x", `{"amount":1}`, "owner-1"), "expenseId", primitive.NewObjectID().Hex()))

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestDeleteExpenseReturnsDeletedRecord(t *testing.T) {
	store, saved := seeded()
	controller := NewDeleteExpenseController(store)

	response := controller.Handle(withPathValue(newRequest(http.MethodDelete, "/api/expenses/x", "", "owner-1"), "expenseId", saved.Id.Hex()))
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, saved.Id, decodeBody[models.Expense](t, response).Id)
	assert.Len(t, store.records, 1)

	response = controller.Handle(withPathValue(newRequest(http.MethodDelete, "/api/expenses/x", "", "owner-1"), "expenseId", saved.Id.Hex()))
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestExportAndDownload(t *testing.T) {
	store, _ := seeded()
	exports := &memoryExports{}
	exportController := NewExportExpensesController(store, exports, 15*time.Minute)

	response := exportController.Handle(newRequest(http.MethodPost, "/api/expenses/export?format=csv", "", "owner-1"))
	require.Equal(t, http.StatusCreated, response.StatusCode)
	ticket := decodeBody[models.ExportTicket](t, response)
	assert.Equal(t, models.ExportCSV, ticket.Format)
	assert.Equal(t, 900, ticket.ExpiresIn)
	assert.True(t, strings.HasSuffix(ticket.Key, ".csv"))
	assert.Equal(t, 15*time.Minute, exports.ttl)

	downloadController := NewDownloadExportController(exports)
	response = downloadController.Handle(withPathValue(newRequest(http.MethodGet, "/api/expenses/export/x", "", "owner-1"), "key", ticket.Key))
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, models.ExportCSV.ContentType(), response.Header.Get("Content-Type"))
	payload, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "groceries")
	assert.NotContains(t, string(payload), "rent")

	response = downloadController.Handle(withPathValue(newRequest(http.MethodGet, "/api/expenses/export/x", "", "owner-2"), "key", ticket.Key))
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	store, _ := seeded()
	response := NewExportExpensesController(store, &memoryExports{}, time.Minute).Handle(
		newRequest(http.MethodPost, "/api/expenses/export?format=pdf", "", "owner-1"))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestDownloadRejectsMalformedKey(t *testing.T) {
	controller := NewDownloadExportController(&memoryExports{})
	for _, key := range []string{"abc", "abc.csv", "6f1c0a52-9d4e-4c1b-a3a5-0a6c1b1f2e3d.pdf"} {
		response := controller.Handle(withPathValue(newRequest(http.MethodGet, "/api/expenses/export/x", "", "owner-1"), "key", key))
		assert.Equal(t, http.StatusBadRequest, response.StatusCode, key)
	}
}
