package menuplan

import (
	"context"
	"time"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/restaurant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=menuplan_repo.go -destination=mock/menuplan_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, m *MenuPlan) error
	FindByID(ctx context.Context, restaurantID, id string) (*MenuPlan, error)
	FindCurrentByRestaurant(ctx context.Context, restaurantID string) ([]MenuPlan, error)

	// ArchiveExpired flips archived on every plan whose end date has passed.
	// Returns the number of rows touched.
	ArchiveExpired(ctx context.Context, today time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *MenuPlan) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindByID(ctx context.Context, restaurantID, id string) (*MenuPlan, error) {
	var m MenuPlan
	err := r.db.WithContext(ctx).
		Scopes(restaurant.Scope(restaurantID)).
		First(&m, "id = ?", id).Error
	return &m, err
}

func (r *repository) FindCurrentByRestaurant(ctx context.Context, restaurantID string) ([]MenuPlan, error) {
	var plans []MenuPlan
	err := r.db.WithContext(ctx).
		Scopes(restaurant.Scope(restaurantID)).
		Where("archived = ?", false).
		Order("start_date ASC").
		Find(&plans).Error
	return plans, err
}

func (r *repository) ArchiveExpired(ctx context.Context, today time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&MenuPlan{}).
		Where("archived = ? AND end_date < ?", false, today.Format("2006-01-02")).
		Update("archived", true)
	return res.RowsAffected, res.Error
}
