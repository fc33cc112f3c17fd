package reservation

import (
	"context"
	"time"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/restaurant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=reservation_repo.go -destination=mock/reservation_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	FindAllByRestaurant(ctx context.Context, restaurantID string) ([]Reservation, error)
	FindTables(ctx context.Context, restaurantID string) ([]DiningTable, error)
	UpdateTableStatus(ctx context.Context, restaurantID, tableID, status string) error

	// ReleaseExpired expires lapsed reservations and frees their tables.
	// Returns the number of reservations flipped.
	ReleaseExpired(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, res *Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(res).Error; err != nil {
			return err
		}
		return tx.Model(&DiningTable{}).
			Where("id = ? AND restaurant_id = ?", res.TableID, res.RestaurantID).
			Update("status", TableReserved).Error
	})
}

func (r *repository) FindAllByRestaurant(ctx context.Context, restaurantID string) ([]Reservation, error) {
	var reservations []Reservation
	err := r.db.WithContext(ctx).
		Scopes(restaurant.Scope(restaurantID)).
		Order("reserved_for ASC").
		Find(&reservations).Error
	return reservations, err
}

func (r *repository) FindTables(ctx context.Context, restaurantID string) ([]DiningTable, error) {
	var tables []DiningTable
	err := r.db.WithContext(ctx).
		Scopes(restaurant.Scope(restaurantID)).
		Order("number ASC").
		Find(&tables).Error
	return tables, err
}

func (r *repository) UpdateTableStatus(ctx context.Context, restaurantID, tableID, status string) error {
	return r.db.WithContext(ctx).
		Model(&DiningTable{}).
		Where("id = ? AND restaurant_id = ?", tableID, restaurantID).
		Update("status", status).Error
}

func (r *repository) ReleaseExpired(ctx context.Context, now time.Time) (int64, error) {
	var flipped int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Free the tables first so a crash between the two updates leaves
		// tables available rather than stuck reserved.
		if err := tx.Exec(`
			UPDATE dining_tables SET status = ?
			WHERE status = ? AND id IN (
				SELECT table_id FROM reservations
				WHERE status = ? AND expires_at < ?
			)`, TableAvailable, TableReserved, StatusReserved, now).Error; err != nil {
			return err
		}

		res := tx.Model(&Reservation{}).
			Where("status = ? AND expires_at < ?", StatusReserved, now).
			Update("status", StatusExpired)
		flipped = res.RowsAffected
		return res.Error
	})

	return flipped, err
}
