package savings

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryGoals struct {
	mu      sync.Mutex
	records []models.SavingsGoal
}

func (m *memoryGoals) index(id primitive.ObjectID, ownerId string) int {
	for i, g := range m.records {
		if g.Id == id && g.OwnerId == ownerId {
			return i
		}
	}
	return -1
}

func (m *memoryGoals) Create(ctx context.Context, goal *models.SavingsGoal) (*models.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := *goal
	saved.Id = primitive.NewObjectID()
	m.records = append(m.records, saved)
	return &saved, nil
}

func (m *memoryGoals) Find(ctx context.Context, ownerId string) ([]models.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := []models.SavingsGoal{}
	for _, g := range m.records {
		if g.OwnerId == ownerId {
			found = append(found, g)
		}
	}
	return found, nil
}

type goalById struct{ *memoryGoals }

func (m goalById) Find(ctx context.Context, id primitive.ObjectID, ownerId string) (*models.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id, ownerId)
	if i < 0 {
		return nil, nil
	}
	found := m.records[i]
	return &found, nil
}

func (m *memoryGoals) Update(ctx context.Context, id primitive.ObjectID, ownerId string, update *models.SavingsGoalUpdate) (*models.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id, ownerId)
	if i < 0 {
		return nil, nil
	}
	g := &m.records[i]
	if update.Name != nil {
		g.Name = *update.Name
	}
	if update.TargetAmount != nil {
		g.TargetAmount = *update.TargetAmount
	}
	if update.CurrentAmount != nil {
		g.CurrentAmount = *update.CurrentAmount
	}
	if update.Deadline != nil {
		g.Deadline = *update.Deadline
	}
	updated := *g
	return &updated, nil
}

func (m *memoryGoals) Contribute(ctx context.Context, id primitive.ObjectID, ownerId string, amount float64) (*models.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id, ownerId)
	if i < 0 {
		return nil, nil
	}
	m.records[i].CurrentAmount += amount
	updated := m.records[i]
	return &updated, nil
}

func (m *memoryGoals) Delete(ctx context.Context, id primitive.ObjectID, ownerId string) (*models.SavingsGoal, error) {
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
