package restaurant

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=restaurant_repo.go -destination=mock/restaurant_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Restaurant, error)
	FindByOwnerID(ctx context.Context, ownerID string) (*Restaurant, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Restaurant, error) {
	var rest Restaurant
	err := r.db.WithContext(ctx).First(&rest, "id = ?", id).Error
	return &rest, err
}

func (r *repository) FindByOwnerID(ctx context.Context, ownerID string) (*Restaurant, error) {
	var rest Restaurant
	err := r.db.WithContext(ctx).First(&rest, "owner_id = ?", ownerID).Error
	return &rest, err
}
