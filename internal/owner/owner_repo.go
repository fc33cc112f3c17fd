package owner

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=owner_repo.go -destination=mock/owner_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, o *Owner) error
	FindByID(ctx context.Context, id string) (*Owner, error)
	FindByEmail(ctx context.Context, email string) (*Owner, error)
	Update(ctx context.Context, o *Owner) error

	// EmailTaken probes uniqueness across the users table. excludeID == ""
	// means no row is excluded and the probe runs over the whole table.
	EmailTaken(ctx context.Context, email string, excludeID string) (bool, error)
	AddressTaken(ctx context.Context, address string) (bool, error)
	PhoneTaken(ctx context.Context, phone string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Owner) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Owner, error) {
	var o Owner
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	return &o, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Owner, error) {
	var o Owner
	err := r.db.WithContext(ctx).First(&o, "email = ?", email).Error
	return &o, err
}

func (r *repository) Update(ctx context.Context, o *Owner) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *repository) EmailTaken(ctx context.Context, email string, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&Owner{}).Where("email = ?", email)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) AddressTaken(ctx context.Context, address string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Owner{}).Where("address = ?", address).Count(&count).Error
	return count > 0, err
}

func (r *repository) PhoneTaken(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Owner{}).Where("phonenumber = ?", phone).Count(&count).Error
	return count > 0, err
}
