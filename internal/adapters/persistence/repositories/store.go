package repositories

import (
	"context"

	"assetguard/internal/core/domain"

	"gorm.io/gorm"
)

// Store bundles the per-kind repositories behind a single durable-store
// surface consumed by the lifecycle engine.
type Store struct {
	assets      AssetRepository
	employees   EmployeeRepository
	assignments AssignmentRepository
	maintenance MaintenanceLogRepository
	requests    RequestRepository
}

// NewStore creates a store over all five entity tables
func NewStore(db *gorm.DB) *Store {
	return &Store{
		assets:      NewAssetRepository(db),
		employees:   NewEmployeeRepository(db),
		assignments: NewAssignmentRepository(db),
		maintenance: NewMaintenanceLogRepository(db),
		requests:    NewRequestRepository(db),
	}
}

func (s *Store) GetAssets(ctx context.Context) ([]domain.Asset, error) {
	return s.assets.GetAll(ctx)
}

func (s *Store) SaveAsset(ctx context.Context, asset domain.Asset) error {
	return s.assets.Save(ctx, asset)
}

func (s *Store) DeleteAsset(ctx context.Context, id string) error {
	return s.assets.Delete(ctx, id)
}

func (s *Store) GetEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.GetAll(ctx)
}

func (s *Store) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	return s.employees.Save(ctx, employee)
}

func (s *Store) GetAssignments(ctx context.Context) ([]domain.Assignment, error) {
	return s.assignments.GetAll(ctx)
}

func (s *Store) SaveAssignment(ctx context.Context, assignment domain.Assignment) error {
	return s.assignments.Save(ctx, assignment)
}

func (s *Store) GetMaintenanceLogs(ctx context.Context) ([]domain.MaintenanceLog, error) {
	return s.maintenance.GetAll(ctx)
}

func (s *Store) SaveMaintenanceLog(ctx context.Context, log domain.MaintenanceLog) error {
	return s.maintenance.Save(ctx, log)
}

func (s *Store) GetRequests(ctx context.Context) ([]domain.AssetRequest, error) {
	return s.requests.GetAll(ctx)
}

func (s *Store) SaveRequest(ctx context.Context, req domain.AssetRequest) error {
	return s.requests.Save(ctx, req)
}
