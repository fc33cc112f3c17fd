package registration

type RegisterRequest struct {
	FirstName            string `json:"first_name" binding:"required"`
	LastName             string `json:"last_name" binding:"required"`
	Address              string `json:"address" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	PhoneNumber          string `json:"phonenumber" binding:"required"`
	Password             string `json:"password" binding:"required"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
	RestaurantName       string `json:"restaurant_name" binding:"required"`
	RestaurantAddress    string `json:"restaurant_address" binding:"required"`
	ContactNo            string `json:"contact_no" binding:"required"`
}

type RegisterResponse struct {
	UserID       string `json:"user_id"`
	RestaurantID string `json:"restaurant_id"`
	Email        string `json:"email"`
	Redirect     string `json:"redirect"`
}
