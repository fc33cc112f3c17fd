package registration

import (
	"context"
	"database/sql"

	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/owner"
	"github.com/dongjrperez-netizen/RestuarantProject-sub002/internal/restaurant"
)

//go:generate mockgen -source=registration_repo.go -destination=mock/registration_repo_mock.go -package=mock

// Repository persists the registration aggregate. Raw SQL so the owner row,
// restaurant row, and outbox row share one *sql.Tx.
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateOwner(ctx context.Context, o *owner.Owner) error
	CreateRestaurant(ctx context.Context, r *restaurant.Restaurant) error
}

type repository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

type execer interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}

func (r *repository) execer() execer {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) CreateOwner(ctx context.Context, o *owner.Owner) error {
	query := `
        INSERT INTO users (
            id, first_name, last_name, address, email, phonenumber,
            password, subscription, is_active
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `

	_, err := r.execer().ExecContext(
		ctx, query,
		o.ID, o.FirstName, o.LastName, o.Address, o.Email, o.PhoneNumber,
		o.Password, o.Subscription, o.IsActive,
	)
	return err
}

func (r *repository) CreateRestaurant(ctx context.Context, rest *restaurant.Restaurant) error {
	query := `
        INSERT INTO restaurants (id, owner_id, name, address, contact_no)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := r.execer().ExecContext(
		ctx, query,
		rest.ID, rest.OwnerID, rest.Name, rest.Address, rest.ContactNo,
	)
	return err
}
