package models

import "time"

type ProjectStatus string

const (
	ProjectStatusNotStarted ProjectStatus = "Not Started"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusOnHold     ProjectStatus = "On Hold"
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusCancelled  ProjectStatus = "Cancelled"
)

func ValidProjectStatus(s string) bool {
	switch ProjectStatus(s) {
	case ProjectStatusNotStarted, ProjectStatusInProgress, ProjectStatusOnHold,
		ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProjectName string     `gorm:"size:200;not null" json:"project_name"`
	Status      string     `gorm:"type:project_status;default:'Not Started';not null" json:"status"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Value       *float64   `json:"value,omitempty"`
	Description string     `json:"description"`
	AccountID   uint       `gorm:"not null;index" json:"account_id"`
	Account     *Account   `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	OwnerID     uint       `gorm:"not null;index" json:"owner_id"`
	Owner       *User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
