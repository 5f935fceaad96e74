package repositories

import (
	"context"

	"assetguard/internal/adapters/persistence/models"
	"assetguard/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maintenanceLogRepository implements MaintenanceLogRepository interface
type maintenanceLogRepository struct {
	db *gorm.DB
}

// NewMaintenanceLogRepository creates a new maintenance log repository
func NewMaintenanceLogRepository(db *gorm.DB) MaintenanceLogRepository {
	return &maintenanceLogRepository{db: db}
}

// GetAll returns all maintenance log rows
func (r *maintenanceLogRepository) GetAll(ctx context.Context) ([]domain.MaintenanceLog, error) {
	var rows []models.MaintenanceLog
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	logs := make([]domain.MaintenanceLog, 0, len(rows))
	for i := range rows {
		logs = append(logs, rows[i].ToDomain())
	}
	return logs, nil
}

// Save upserts a maintenance log row by primary key
func (r *maintenanceLogRepository) Save(ctx context.Context, log domain.MaintenanceLog) error {
	row := models.MaintenanceLogFromDomain(log)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}
