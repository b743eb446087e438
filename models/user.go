package models

import "time"

type UserRole string

const (
	UserRoleAdmin          UserRole = "admin"
	UserRoleDeliveryHead   UserRole = "delivery_head"
	UserRoleSalesExecutive UserRole = "sales_executive"
)

// SecretKeyLookup is a deterministic digest used to find the row for a
// presented secret key; SecretKeyHash is the bcrypt hash verified after
// lookup.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserName        string    `gorm:"size:100;not null;unique" json:"user_name"`
	SecretKeyLookup string    `gorm:"size:64;not null;uniqueIndex" json:"-"`
	SecretKeyHash   string    `gorm:"size:255;not null" json:"-"`
	Role            string    `gorm:"type:user_role;default:'sales_executive';not null" json:"role"`
	Email           *string   `gorm:"size:100" json:"email,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
