package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/gin-blog/internal/model"
)

type LocationRepository interface {
	Create(ctx context.Context, location *model.Location) error
	Delete(ctx context.Context, location *model.Location) error
	ListPublished(ctx context.Context) ([]*model.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository { return &locationRepository{db: db} }

func (r *locationRepository) Create(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) Delete(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Delete(location).Error
}

func (r *locationRepository) ListPublished(ctx context.Context) ([]*model.Location, error) {
	var locations []*model.Location
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("name").
		Find(&locations).Error
	return locations, err
}
