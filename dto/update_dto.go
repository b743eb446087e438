package dto

type CreateUpdateDTO struct {
	Notes      string  `json:"notes" binding:"required"`
	Date       *string `json:"date,omitempty"`
	UpdateType string  `json:"update_type"`
	ProjectID  uint    `json:"project_id" binding:"required"`
	TaskID     *uint   `json:"task_id,omitempty"`
}
