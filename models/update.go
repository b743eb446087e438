package models

import "time"

type UpdateType string

const (
	UpdateTypeCall               UpdateType = "Call"
	UpdateTypeEmail              UpdateType = "Email"
	UpdateTypeMeeting            UpdateType = "Meeting"
	UpdateTypeFollowUp           UpdateType = "Follow-up"
	UpdateTypeInternalDiscussion UpdateType = "Internal Discussion"
	UpdateTypeClientUpdate       UpdateType = "Client Update"
)

func ValidUpdateType(s string) bool {
	switch UpdateType(s) {
	case UpdateTypeCall, UpdateTypeEmail, UpdateTypeMeeting, UpdateTypeFollowUp,
		UpdateTypeInternalDiscussion, UpdateTypeClientUpdate:
		return true
	}
	return false
}

type Update struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Notes       string       `gorm:"not null" json:"notes"`
	Date        time.Time    `gorm:"type:date;not null" json:"date"`
	UpdateType  string       `gorm:"type:update_type;default:'Call';not null" json:"update_type"`
	ProjectID   uint         `gorm:"not null;index" json:"project_id"`
	Project     *Project     `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	TaskID      *uint        `gorm:"index" json:"task_id,omitempty"`
	Task        *Task        `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	OwnerID     uint         `gorm:"not null;index" json:"owner_id"`
	Owner       *User        `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:UpdateID" json:"attachments,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Attachment is a file stored in MinIO and linked to an update.
type Attachment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UpdateID    uint      `gorm:"not null;index" json:"update_id"`
	Filename    string    `gorm:"size:255;not null" json:"filename"`
	ObjectName  string    `gorm:"size:512;not null" json:"object_name"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}
