package employee

type CreateEmployeeRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	MiddleName  string `json:"middle_name"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	RoleID      int    `json:"role_id" binding:"required"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	RoleID       int    `json:"role_id"`
	RoleLabel    string `json:"role_label"`
	Redirect     string `json:"redirect"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at"`
}
