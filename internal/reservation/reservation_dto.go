package reservation

type CreateReservationRequest struct {
	TableID     string `json:"table_id" binding:"required,uuid"`
	GuestName   string `json:"guest_name" binding:"required,max=255"`
	GuestPhone  string `json:"guest_phone"`
	PartySize   int    `json:"party_size" binding:"required,min=1"`
	ReservedFor string `json:"reserved_for" binding:"required,datetime=2006-01-02 15:04"`
}

type ReservationResponse struct {
	ID          string `json:"id"`
	TableID     string `json:"table_id"`
	GuestName   string `json:"guest_name"`
	GuestPhone  string `json:"guest_phone,omitempty"`
	PartySize   int    `json:"party_size"`
	ReservedFor string `json:"reserved_for"`
	ExpiresAt   string `json:"expires_at"`
	Status      string `json:"status"`
}

type TableAvailability struct {
	TableID  string `json:"table_id"`
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}
