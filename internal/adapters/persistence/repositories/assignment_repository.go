package repositories

import (
	"context"

	"assetguard/internal/adapters/persistence/models"
	"assetguard/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// assignmentRepository implements AssignmentRepository interface
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// GetAll returns all assignment rows
func (r *assignmentRepository) GetAll(ctx context.Context) ([]domain.Assignment, error) {
	var rows []models.Assignment
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	assignments := make([]domain.Assignment, 0, len(rows))
	for i := range rows {
		assignments = append(assignments, rows[i].ToDomain())
	}
	return assignments, nil
}

// Save upserts an assignment row by primary key
func (r *assignmentRepository) Save(ctx context.Context, assignment domain.Assignment) error {
	row := models.AssignmentFromDomain(assignment)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}
