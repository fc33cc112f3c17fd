package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse reports the issued guard and where the client should land.
// Waiters redirect to the mobile planning view, everyone else to the
// dashboard.
type LoginResponse struct {
	UserID       string `json:"user_id"`
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	RoleLabel    string `json:"role_label"`
	Guard        string `json:"guard"`
	Redirect     string `json:"redirect"`
}
