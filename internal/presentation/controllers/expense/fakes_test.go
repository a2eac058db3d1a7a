package expense

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStore = errors.New("store unavailable")

type memoryExpenses struct {
	records []models.Expense
	err     error
}

func (m *memoryExpenses) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	saved := *expense
	saved.Id = primitive.NewObjectID()
	saved.CategoryKey = models.CategoryKey(saved.Category)
	m.records = append(m.records, saved)
	return &saved, nil
}

func (m *memoryExpenses) Find(ctx context.Context, ownerId string) ([]models.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	found := []models.Expense{}
	for _, e := range m.records {
		if e.OwnerId == ownerId {
			found = append(found, e)
		}
	}
	return found, nil
}

func (m *memoryExpenses) index(id primitive.ObjectID, ownerId string) int {
	for i, e := range m.records {
		if e.Id == id && e.OwnerId == ownerId {
			return i
		}
	}
	return -1
}

type expenseById struct{ *memoryExpenses }

func (m expenseById) Find(ctx context.Context, id primitive.ObjectID, ownerId string) (*models.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	i := m.index(id, ownerId)
	if i < 0 {
		return nil, nil
	}
	found := m.records[i]
	return &found, nil
}

func (m *memoryExpenses) Update(ctx context.Context, id primitive.ObjectID, ownerId string, update *models.ExpenseUpdate) (*models.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	i := m.index(id, ownerId)
	if i < 0 {
		return nil, nil
	}
	e := &m.records[i]
	if update.Category != nil {
		e.Category = *update.Category
		e.CategoryKey = models.CategoryKey(*update.Category)
	}
	if update.Amount != nil {
		e.Amount = *update.Amount
	}
	if update.Date != nil {
		e.Date = *update.Date
	}
	if update.Description != nil {
		e.Description = *update.Description
	}
	updated := *e
	return &updated, nil
}

func (m *memoryExpenses) Delete(ctx context.Context, id primitive.ObjectID, ownerId string) (*models.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	i := m.index(id, ownerId)
	if i < 0 {
		return nil, nil
	}
	deleted := m.records[i]
	m.records = append(m.records[:i], m.records[i+1:]...)
	return &deleted, nil
}

type memoryExports struct {
	payloads map[string][]byte
	ttl      time.Duration
}

func (m *memoryExports) Save(ctx context.Context, key string, payload []byte, expiration time.Duration) error {
	if m.payloads == nil {
		m.payloads = map[string][]byte{}
	}
	m.payloads[key] = payload
	m.ttl = expiration
	return nil
}

func (m *memoryExports) Find(ctx context.Context, key string) ([]byte, error) {
	return m.payloads[key], nil
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
