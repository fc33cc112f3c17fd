package purchaseorder

import (
	"context"
	"database/sql"
)

//go:generate mockgen -source=purchaseorder_repo.go -destination=mock/purchaseorder_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// NextPONumber atomically bumps the per-restaurant counter and returns
	// the new sequence value. Safe under concurrent order creation.
	NextPONumber(ctx context.Context, restaurantID string) (int64, error)

	Create(ctx context.Context, po *PurchaseOrder) error
	FindAllByRestaurant(ctx context.Context, restaurantID string) ([]PurchaseOrder, error)
	FindByPONumber(ctx context.Context, poNumber string) (*PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id string, status string) error
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

type querier interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func (r *repository) q() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) NextPONumber(ctx context.Context, restaurantID string) (int64, error) {
	query := `
INSERT INTO po_counters (restaurant_id, last_number)
VALUES ($1, 1)
ON CONFLICT (restaurant_id)
DO UPDATE SET last_number = po_counters.last_number + 1
RETURNING last_number
`
	var n int64
	err := r.q().QueryRowContext(ctx, query, restaurantID).Scan(&n)
	return n, err
}

func (r *repository) Create(ctx context.Context, po *PurchaseOrder) error {
	query := `
INSERT INTO purchase_orders (
	id, restaurant_id, po_number, supplier_name, supplier_email, notes, status
) VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := r.q().ExecContext(
		ctx, query,
		po.ID, po.RestaurantID, po.PONumber,
		po.SupplierName, po.SupplierEmail, po.Notes, po.Status,
	)
	return err
}

func (r *repository) FindAllByRestaurant(ctx context.Context, restaurantID string) ([]PurchaseOrder, error) {
	query := `
SELECT id, restaurant_id, po_number, supplier_name, supplier_email, notes, status, created_at, updated_at
FROM purchase_orders
WHERE restaurant_id = $1
ORDER BY created_at DESC
`
	rows, err := r.q().QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []PurchaseOrder
	for rows.Next() {
		var po PurchaseOrder
		if err := rows.Scan(
			&po.ID, &po.RestaurantID, &po.PONumber,
			&po.SupplierName, &po.SupplierEmail, &po.Notes, &po.Status,
			&po.CreatedAt, &po.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, po)
	}
	return orders, rows.Err()
}

func (r *repository) FindByPONumber(ctx context.Context, poNumber string) (*PurchaseOrder, error) {
	query := `
SELECT id, restaurant_id, po_number, supplier_name, supplier_email, notes, status, created_at, updated_at
FROM purchase_orders
WHERE po_number = $1
`
	var po PurchaseOrder
	err := r.q().QueryRowContext(ctx, query, poNumber).Scan(
		&po.ID, &po.RestaurantID, &po.PONumber,
		&po.SupplierName, &po.SupplierEmail, &po.Notes, &po.Status,
		&po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE purchase_orders SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.q().ExecContext(ctx, query, id, status)
	return err
}
