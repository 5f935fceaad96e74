package services

import (
	"context"

	"assetguard/internal/core/domain"
)

// EntityStore is the durable store surface the lifecycle engine writes
// through. Implemented by repositories.Store; tests substitute an in-memory
// fake. Saves are upserts by primary key; the store must tolerate
// last-write-wins with no ordering assumptions across entity ids.
type EntityStore interface {
	GetAssets(ctx context.Context) ([]domain.Asset, error)
	SaveAsset(ctx context.Context, asset domain.Asset) error
	DeleteAsset(ctx context.Context, id string) error

	GetEmployees(ctx context.Context) ([]domain.Employee, error)
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	GetAssignments(ctx context.Context) ([]domain.Assignment, error)
	SaveAssignment(ctx context.Context, assignment domain.Assignment) error

	GetMaintenanceLogs(ctx context.Context) ([]domain.MaintenanceLog, error)
	SaveMaintenanceLog(ctx context.Context, log domain.MaintenanceLog) error

	GetRequests(ctx context.Context) ([]domain.AssetRequest, error)
	SaveRequest(ctx context.Context, req domain.AssetRequest) error
}
