package models

import "time"

// Document is a file attached to a project (contract, moodboard, release).
type Document struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProjectID  uint      `json:"project_id" gorm:"index;not null"`
	Name       string    `json:"name" gorm:"not null"`
	URL        string    `json:"url" gorm:"not null"`
	Type       string    `json:"type"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Tag labels projects; the project_tags join table is managed by GORM.
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActivityLog is an append-only audit entry on a project.
type ActivityLog struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ProjectID uint      `json:"project_id" gorm:"index;not null"`
	Type      string    `json:"type"`
	Message   string    `json:"description"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}
