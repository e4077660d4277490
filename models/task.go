package models

import "time"

// TaskStatus values for wedding production tasks.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// Task is a unit of work scheduled within a wedding project. Its lifetime is
// bounded by the parent project (FK cascade).
type Task struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	ProjectID     uint       `json:"project_id" gorm:"index;not null"`
	Title         string     `json:"title" gorm:"not null"`
	Description   string     `json:"description"`
	DueDate       time.Time  `json:"due_date" gorm:"not null"`
	Status        TaskStatus `json:"status" gorm:"type:varchar(16);default:pending"`
	AssignedTo    string     `json:"assigned_to"`
	Priority      string     `json:"priority" gorm:"type:varchar(8);default:medium"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
