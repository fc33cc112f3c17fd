package profile

type UpdateProfileRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	MiddleName  string `json:"middle_name"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	DateOfBirth string `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" binding:"required,oneof=Male Female Other"`
}

type ProfileResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name,omitempty"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Guard       string `json:"guard"`
}
