package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"assetguard/internal/adapters/http/middleware"
	"assetguard/internal/core/domain"
	"assetguard/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is a minimal always-succeeding EntityStore for handler tests
type memStore struct {
	mu          sync.Mutex
	assets      map[string]domain.Asset
	employees   map[string]domain.Employee
	assignments map[string]domain.Assignment
	logs        map[string]domain.MaintenanceLog
	requests    map[string]domain.AssetRequest
}

func newMemStore() *memStore {
	return &memStore{
		assets:      make(map[string]domain.Asset),
		employees:   make(map[string]domain.Employee),
		assignments: make(map[string]domain.Assignment),
		logs:        make(map[string]domain.MaintenanceLog),
		requests:    make(map[string]domain.AssetRequest),
	}
}

func (m *memStore) GetAssets(context.Context) ([]domain.Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Asset, 0, len(m.assets))
	for _, a := range m.assets {
		out = append(out, a)
	}
	return out, nil
}

func (m *memStore) SaveAsset(_ context.Context, a domain.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[a.ID] = a
	return nil
}

func (m *memStore) DeleteAsset(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.assets, id)
	return nil
}

func (m *memStore) GetEmployees(context.Context) ([]domain.Employee, error) {
	return nil, nil
}

func (m *memStore) SaveEmployee(_ context.Context, e domain.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.employees[e.ID] = e
	return nil
}

func (m *memStore) GetAssignments(context.Context) ([]domain.Assignment, error) {
	return nil, nil
}

func (m *memStore) SaveAssignment(_ context.Context, a domain.Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignments[a.ID] = a
	return nil
}

func (m *memStore) GetMaintenanceLogs(context.Context) ([]domain.MaintenanceLog, error) {
	return nil, nil
}

func (m *memStore) SaveMaintenanceLog(_ context.Context, l domain.MaintenanceLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs[l.ID] = l
	return nil
}

func (m *memStore) GetRequests(context.Context) ([]domain.AssetRequest, error) {
	return nil, nil
}

func (m *memStore) SaveRequest(_ context.Context, r domain.AssetRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[r.ID] = r
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *services.LifecycleService) {
	t.Helper()
	engine := services.NewLifecycleService(newMemStore())
	engine.Load(context.Background())

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.CustomErrorHandler,
	})
	Setup(app, engine)
	return app, engine
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestCreateAssetEndpoint(t *testing.T) {
	app, engine := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/assets", map[string]any{
		"id":       "A1",
		"name":     "MacBook Air",
		"category": "Laptop",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	snap := engine.Snapshot()
	require.Len(t, snap.Assets, 1)
	assert.Equal(t, domain.AssetAvailable, snap.Assets[0].Status, "status defaults to AVAILABLE")
}

func TestCreateAssetEndpointRequiresID(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/assets", map[string]any{
		"name": "No ID",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestAssignAndReturnEndpoints(t *testing.T) {
	app, engine := newTestApp(t)
	engine.CreateAsset(domain.Asset{ID: "A1", Name: "Laptop", Status: domain.AssetAvailable})
	engine.CreateEmployee(domain.Employee{ID: "E1", Name: "Dana"})

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/assets/A1/assign", map[string]any{
		"employeeId": "E1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assignment := data["assignment"].(map[string]any)
	assert.Equal(t, "A1", assignment["assetId"])
	assert.Equal(t, true, assignment["isActive"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/assets/A1/return", map[string]any{
		"notes": "all good",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	snap := engine.Snapshot()
	assert.Equal(t, domain.AssetAvailable, snap.Assets[0].Status)
	assert.False(t, snap.Assignments[0].IsActive)
}

func TestAssignEndpointRequiresEmployee(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/assets/A1/assign", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReturnEndpointAcceptsEmptyBody(t *testing.T) {
	app, engine := newTestApp(t)
	engine.CreateAsset(domain.Asset{ID: "A1", Name: "Laptop", Status: domain.AssetAvailable})
	engine.CreateEmployee(domain.Employee{ID: "E1", Name: "Dana"})
	engine.AssignAsset("A1", "E1", "")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/assets/A1/return", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	snap := engine.Snapshot()
	assert.Equal(t, domain.AssetAvailable, snap.Assets[0].Status)
	assert.Empty(t, snap.Assignments[0].Notes)
}

func TestReturnEndpointRejectsMalformedBody(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/A1/return", strings.NewReader("{notes"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApproveUnknownRequestReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/requests/GHOST/approve", map[string]any{
		"assetId": "A1",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, domain.ErrRequestNotFound.Error(), body["message"])
}

func TestRejectUnknownRequestReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/requests/GHOST/reject", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, domain.ErrRequestNotFound.Error(), body["message"])
}

func TestMaintenanceStatusUnknownLogReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPatch, "/api/v1/maintenance/GHOST/status", map[string]any{
		"status": "Completed",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, domain.ErrLogNotFound.Error(), body["message"])
}

func TestSnapshotEndpoint(t *testing.T) {
	app, engine := newTestApp(t)
	engine.CreateAsset(domain.Asset{ID: "A1", Name: "Laptop", Status: domain.AssetAvailable})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/snapshot", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var snap services.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.False(t, snap.Loading)
	require.Len(t, snap.Assets, 1)
	assert.Equal(t, "A1", snap.Assets[0].ID)
}
