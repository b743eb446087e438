package models

import "time"

type AccountType string

const (
	AccountTypeClient  AccountType = "Client"
	AccountTypePartner AccountType = "Partner"
	AccountTypeVendor  AccountType = "Vendor"
)

type Account struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AccountName string    `gorm:"size:200;not null" json:"account_name"`
	AccountType string    `gorm:"type:account_type;default:'Client';not null" json:"account_type"`
	Description string    `json:"description"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Owner       *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
