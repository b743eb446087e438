package models

import "time"

type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusBlocked    TaskStatus = "Blocked"
	TaskStatusDone       TaskStatus = "Done"
)

func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusBlocked, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	TaskName     string     `gorm:"size:200;not null" json:"task_name"`
	Description  string     `json:"description"`
	Status       string     `gorm:"type:task_status;default:'To Do';not null" json:"status"`
	DueDate      *time.Time `gorm:"type:date" json:"due_date,omitempty"`
	ProjectID    uint       `gorm:"not null;index" json:"project_id"`
	Project      *Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	AssignedToID uint       `gorm:"not null;index" json:"assigned_to_id"`
	AssignedTo   *User      `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
	CreatedByID  uint       `gorm:"not null;index" json:"created_by_id"`
	CreatedBy    *User      `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
