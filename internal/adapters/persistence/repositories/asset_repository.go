package repositories

import (
	"context"

	"assetguard/internal/adapters/persistence/models"
	"assetguard/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// assetRepository implements AssetRepository interface
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

// GetAll returns all asset rows
func (r *assetRepository) GetAll(ctx context.Context) ([]domain.Asset, error) {
	var rows []models.Asset
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	assets := make([]domain.Asset, 0, len(rows))
	for i := range rows {
		assets = append(assets, rows[i].ToDomain())
	}
	return assets, nil
}

// Save upserts an asset row by primary key (insert if absent, full overwrite if present)
func (r *assetRepository) Save(ctx context.Context, asset domain.Asset) error {
	row := models.AssetFromDomain(asset)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}

// Delete removes an asset row by id
func (r *assetRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Asset{}, "id = ?", id).Error
}
