package store

import (
	"context"
	"errors"
	"fmt"

	"estate-backend/internal/models"

	"gorm.io/gorm"
)

// Gorm is the durable backend used when DATABASE_URL is configured. Ids
// are UUIDs assigned on create; timestamps are store-managed. Atomicity is
// whatever the database provides for single-row statements.
type Gorm struct {
	DB *gorm.DB
}

// NewGorm migrates the listings table and returns the durable store.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&models.Listing{}); err != nil {
		return nil, fmt.Errorf("migrate listings: %w", err)
	}
	return &Gorm{DB: db}, nil
}

// List returns all listings newest first.
func (g *Gorm) List(ctx context.Context) ([]models.Listing, error) {
	var items []models.Listing
	if err := g.DB.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (g *Gorm) Get(ctx context.Context, id string) (*models.Listing, error) {
	var l models.Listing
	if err := g.DB.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (g *Gorm) Create(ctx context.Context, f Fields) (*models.Listing, error) {
	l := newListing(f)
	if err := g.DB.WithContext(ctx).Create(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (g *Gorm) Update(ctx context.Context, id string, p Patch) (*models.Listing, error) {
	l, err := g.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyPatch(l, p)
	if err := g.DB.WithContext(ctx).Save(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (g *Gorm) Delete(ctx context.Context, id string) (*models.Listing, error) {
	l, err := g.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := g.DB.WithContext(ctx).Delete(&models.Listing{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return l, nil
}
