package repositories

import (
	"context"

	"assetguard/internal/adapters/persistence/models"
	"assetguard/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// employeeRepository implements EmployeeRepository interface
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetAll returns all employee rows
func (r *employeeRepository) GetAll(ctx context.Context) ([]domain.Employee, error) {
	var rows []models.Employee
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	employees := make([]domain.Employee, 0, len(rows))
	for i := range rows {
		employees = append(employees, rows[i].ToDomain())
	}
	return employees, nil
}

// Save upserts an employee row by primary key
func (r *employeeRepository) Save(ctx context.Context, employee domain.Employee) error {
	row := models.EmployeeFromDomain(employee)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}
