package menuplan

type CreateMenuPlanRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type MenuPlanResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Archived    bool   `json:"archived"`
	CreatedAt   string `json:"created_at"`
}
