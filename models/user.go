package models

import "time"

// User roles mirror the studio's staff positions.
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RolePhotographer = "photographer"
	RoleVideographer = "videographer"
	RoleEditor       = "editor"
)

// User represents a registered staff account.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	DisplayName string    `json:"display_name" gorm:"not null"`
	Role        string    `json:"role" gorm:"type:varchar(32);not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
