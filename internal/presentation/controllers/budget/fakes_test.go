package budget

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStore = errors.New("store unavailable")

type memoryBudgets struct {
	mu      sync.Mutex
	records []models.Budget
	err     error
	failOn  string // category whose spent update fails
}

func (m *memoryBudgets) index(id primitive.ObjectID, ownerId string) int {
	for i, b := range m.records {
		if b.Id == id && b.OwnerId == ownerId {
			return i
		}
	}
	return -1
}

func (m *memoryBudgets) Create(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	saved := *budget
	saved.Id = primitive.NewObjectID()
	saved.CategoryKey = models.CategoryKey(saved.Category)
	m.records = append(m.records, saved)
	return &saved, nil
}

func (m *memoryBudgets) Find(ctx context.Context, ownerId string) ([]models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	found := []models.Budget{}
	for _, b := range m.records {
		if b.OwnerId == ownerId {
			found = append(found, b)
		}
	}
	return found, nil
}

type budgetById struct{ *memoryBudgets }

func (m budgetById) Find(ctx context.Context, id primitive.ObjectID, ownerId string) (*models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id, ownerId)
	if i < 0 {
		return nil, nil
	}
	found := m.records[i]
	return &found, nil
}

func (m *memoryBudgets) Update(ctx context.Context, id primitive.ObjectID, ownerId string, update *models.BudgetUpdate) (*models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id, ownerId)
	if i < 0 {
		return nil, nil
	}
	b := &m.records[i]
	if update.Category != nil {
		b.Category = *update.Category
		b.CategoryKey = models.CategoryKey(*update.Category)
	}
	if update.Amount != nil {
		b.Amount = *update.Amount
	}
	if update.Period != nil {
		b.Period = *update.Period
	}
	updated := *b
	return &updated, nil
}

func (m *memoryBudgets) UpdateSpent(ctx context.Context, id primitive.ObjectID, ownerId string, spent float64, calculatedAt time.Time) (*models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id, ownerId)
	if i < 0 {
		return nil, nil
	}
	if m.records[i].Category == m.failOn {
		return nil, errStore
	}
	m.records[i].Spent = spent
	m.records[i].LastCalculatedAt = &calculatedAt
	updated := m.records[i]
	return &updated, nil
}

func (m *memoryBudgets) Delete(ctx context.Context, id primitive.ObjectID, ownerId string) (*models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id, ownerId)
	if i < 0 {
		return nil, nil
	}
	deleted := m.records[i]
	m.records = append(m.records[:i], m.records[i+1:]...)
	return &deleted, nil
}

type memoryExpenses []models.Expense

func (m memoryExpenses) FindInWindow(ctx context.Context, ownerId string, categoryKey string, start time.Time, end time.Time) ([]models.Expense, error) {
	found := []models.Expense{}
	for _, e := range m {
		if e.OwnerId == ownerId && models.CategoryKey(e.Category) == categoryKey && !e.Date.Before(start) && !e.Date.After(end) {
			found = append(found, e)
		}
	}
	return found, nil
}

func newRequest(method string, target string, body string, ownerId string) presentationProtocols.HttpRequest {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if ownerId != "" {
		req.Header.Set(helpers.OwnerHeader, ownerId)
	}

	return presentationProtocols.HttpRequest{
		Body:      req.Body,
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func withPathValue(r presentationProtocols.HttpRequest, name string, value string) presentationProtocols.HttpRequest {
	r.Req.SetPathValue(name, value)
	return r
}

func decodeBody[T any](t *testing.T, response *presentationProtocols.HttpResponse) T {
	t.Helper()
	var out T
	require.NotNil(t, response.Body)
	require.NoError(t, json.NewDecoder(response.Body).Decode(&out))
	return out
}
