package repositories

import (
	"context"

	"assetguard/internal/adapters/persistence/models"
	"assetguard/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// requestRepository implements RequestRepository interface
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

// GetAll returns all request rows
func (r *requestRepository) GetAll(ctx context.Context) ([]domain.AssetRequest, error) {
	var rows []models.AssetRequest
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	requests := make([]domain.AssetRequest, 0, len(rows))
	for i := range rows {
		requests = append(requests, rows[i].ToDomain())
	}
	return requests, nil
}

// Save upserts a request row by primary key
func (r *requestRepository) Save(ctx context.Context, req domain.AssetRequest) error {
	row := models.AssetRequestFromDomain(req)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}
