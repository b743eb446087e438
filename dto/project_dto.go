package dto

type CreateProjectDTO struct {
	ProjectName string   `json:"project_name" binding:"required"`
	Status      string   `json:"status"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	Description string   `json:"description"`
	AccountID   uint     `json:"account_id" binding:"required"`
}

type UpdateProjectDTO struct {
	ProjectName *string  `json:"project_name,omitempty"`
	Status      *string  `json:"status,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	Description *string  `json:"description,omitempty"`
}
