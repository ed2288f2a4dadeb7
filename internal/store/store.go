package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"asset-inventory-backend/internal/model"
)

var (
	// ErrNotFound is returned when no asset matches the given key.
	ErrNotFound = errors.New("asset not found")
	// ErrDuplicateKey is returned when a write would violate asset number or
	// barcode uniqueness.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Store defines the record store contract for asset persistence.
type Store interface {
	Create(ctx context.Context, asset model.Asset) (model.Asset, error)
	Update(ctx context.Context, assetNumber string, asset model.Asset) (model.Asset, error)
	GetByAssetNumber(ctx context.Context, assetNumber string) (model.Asset, error)
	GetByBarcode(ctx context.Context, barcode string) (model.Asset, error)
	ListAll(ctx context.Context) ([]model.Asset, error)
	Delete(ctx context.Context, assetNumber string) (bool, error)
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying handle for liveness checks.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// Create persists a new asset. ID must be zero; DateAdded and LastUpdated are
// assigned here and the caller's values for them are ignored.
func (s *gormStore) Create(ctx context.Context, asset model.Asset) (model.Asset, error) {
	now := time.Now()
	asset.ID = 0
	asset.DateAdded = now
	asset.LastUpdated = now

	if err := s.db.WithContext(ctx).Create(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Asset{}, fmt.Errorf("asset %q: %w", asset.AssetNumber, ErrDuplicateKey)
		}
		return model.Asset{}, fmt.Errorf("failed to create asset: %w", err)
	}
	return asset, nil
}

// Update locates the asset by its current asset number and overwrites every
// mutable field, including the asset number and barcode themselves. DateAdded
// is preserved; LastUpdated is refreshed. An update that would collide with
// another row's asset number or barcode fails with ErrDuplicateKey.
func (s *gormStore) Update(ctx context.Context, assetNumber string, asset model.Asset) (model.Asset, error) {
	var updated model.Asset
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Asset
		if err := tx.Where("asset_number = ?", assetNumber).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("asset %q: %w", assetNumber, ErrNotFound)
			}
			return fmt.Errorf("failed to load asset: %w", err)
		}

		existing.AssetNumber = asset.AssetNumber
		existing.SerialNumber = asset.SerialNumber
		existing.Barcode = asset.Barcode
		existing.Location = asset.Location
		existing.Status = asset.Status
		existing.StaffName = asset.StaffName
		existing.StaffNumber = asset.StaffNumber
		existing.Condition = asset.Condition
		existing.LastUpdated = time.Now()

		if err := tx.Save(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("asset %q: %w", asset.AssetNumber, ErrDuplicateKey)
			}
			return fmt.Errorf("failed to update asset: %w", err)
		}
		updated = existing
		return nil
	})
	if err != nil {
		return model.Asset{}, err
	}
	return updated, nil
}

// GetByAssetNumber performs an exact-match lookup on the external key.
func (s *gormStore) GetByAssetNumber(ctx context.Context, assetNumber string) (model.Asset, error) {
	var asset model.Asset
	if err := s.db.WithContext(ctx).Where("asset_number = ?", assetNumber).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Asset{}, fmt.Errorf("asset %q: %w", assetNumber, ErrNotFound)
		}
		return model.Asset{}, fmt.Errorf("failed to load asset: %w", err)
	}
	return asset, nil
}

// GetByBarcode performs an exact-match lookup on the barcode. An empty
// barcode never resolves: assets without a barcode are not addressable here.
func (s *gormStore) GetByBarcode(ctx context.Context, barcode string) (model.Asset, error) {
	if barcode == "" {
		return model.Asset{}, fmt.Errorf("empty barcode: %w", ErrNotFound)
	}
	var asset model.Asset
	if err := s.db.WithContext(ctx).Where("barcode = ?", barcode).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Asset{}, fmt.Errorf("barcode %q: %w", barcode, ErrNotFound)
		}
		return model.Asset{}, fmt.Errorf("failed to load asset: %w", err)
	}
	return asset, nil
}

// ListAll returns a snapshot of every asset, ascending by asset number.
func (s *gormStore) ListAll(ctx context.Context) ([]model.Asset, error) {
	var assets []model.Asset
	if err := s.db.WithContext(ctx).Order("asset_number ASC").Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// Delete removes the matching asset if present and reports whether a row was
// actually removed. Deleting an absent asset number is not an error.
func (s *gormStore) Delete(ctx context.Context, assetNumber string) (bool, error) {
	result := s.db.WithContext(ctx).Where("asset_number = ?", assetNumber).Delete(&model.Asset{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
