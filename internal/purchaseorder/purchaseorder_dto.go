package purchaseorder

type CreatePurchaseOrderRequest struct {
	SupplierName  string `json:"supplier_name" binding:"required,max=255"`
	SupplierEmail string `json:"supplier_email" binding:"required,email"`
	Notes         string `json:"notes"`
}

type PurchaseOrderResponse struct {
	ID            string `json:"id"`
	PONumber      string `json:"po_number"`
	SupplierName  string `json:"supplier_name"`
	SupplierEmail string `json:"supplier_email"`
	Notes         string `json:"notes,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

// RespondResult carries the props for the supplier-facing response page.
type RespondResult struct {
	Action   string
	PONumber string
	Message  string
}
