package employee

import (
	"context"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/restaurant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, restaurantID, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindAllByRestaurant(ctx context.Context, restaurantID string) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error

	// EmailTaken probes the employees table, excluding excludeID when set.
	EmailTaken(ctx context.Context, email string, excludeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, restaurantID, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(restaurant.Scope(restaurantID)).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "email = ?", email).Error
	return &e, err
}

func (r *repository) FindAllByRestaurant(ctx context.Context, restaurantID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Scopes(restaurant.Scope(restaurantID)).
		Order("last_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) EmailTaken(ctx context.Context, email string, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&Employee{}).Where("email = ?", email)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
