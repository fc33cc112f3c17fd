package purchaseorder

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"
)

// PurchaseOrder is an order sent to a supplier. The supplier responds via an
// email link, so the respond flow carries no staff authentication; the PO
// number is the lookup handle.
type PurchaseOrder struct {
	ID            uuid.UUID
	RestaurantID  uuid.UUID
	PONumber      string
	SupplierName  string
	SupplierEmail string
	Notes         string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
