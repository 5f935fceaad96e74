package repositories

import (
	"context"

	"assetguard/internal/core/domain"
)

// AssetRepository defines asset table access
type AssetRepository interface {
	GetAll(ctx context.Context) ([]domain.Asset, error)
	Save(ctx context.Context, asset domain.Asset) error
	Delete(ctx context.Context, id string) error
}

// EmployeeRepository defines employee table access
type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]domain.Employee, error)
	Save(ctx context.Context, employee domain.Employee) error
}

// AssignmentRepository defines assignment table access
type AssignmentRepository interface {
	GetAll(ctx context.Context) ([]domain.Assignment, error)
	Save(ctx context.Context, assignment domain.Assignment) error
}

// MaintenanceLogRepository defines maintenance log table access
type MaintenanceLogRepository interface {
	GetAll(ctx context.Context) ([]domain.MaintenanceLog, error)
	Save(ctx context.Context, log domain.MaintenanceLog) error
}

// RequestRepository defines asset request table access
type RequestRepository interface {
	GetAll(ctx context.Context) ([]domain.AssetRequest, error)
	Save(ctx context.Context, req domain.AssetRequest) error
}
