package dto

type CreateTaskDTO struct {
	TaskName     string  `json:"task_name" binding:"required"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	DueDate      *string `json:"due_date,omitempty"`
	ProjectID    uint    `json:"project_id" binding:"required"`
	AssignedToID uint    `json:"assigned_to_id" binding:"required"`
}

type UpdateTaskDTO struct {
	TaskName     *string `json:"task_name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Status       *string `json:"status,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
	AssignedToID *uint   `json:"assigned_to_id,omitempty"`
}
