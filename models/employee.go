package models

import "time"

// Employee tracking tables added in the later schema revisions. These use
// string uuid primary keys, matching the original migration.

type Employee struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Age        int       `json:"age"`
	Roles      []string  `json:"role" gorm:"serializer:json"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone      string    `json:"phone"`
	Avatar     string    `json:"avatar"`
	StartDate  time.Time `json:"start_date"`
	Department string    `json:"department"`
	Status     string    `json:"status" gorm:"type:varchar(16);default:active"` // active | inactive
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WorkSession is a timed stretch of work by an employee on a project task.
type WorkSession struct {
	ID         string     `json:"id" gorm:"primaryKey"`
	EmployeeID string     `json:"employee_id" gorm:"index;not null"`
	ProjectID  uint       `json:"project_id" gorm:"index"`
	TaskID     string     `json:"task_id"`
	StartTime  time.Time  `json:"start_time" gorm:"not null"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Duration   int        `json:"duration"` // seconds, set on stop
	Status     string     `json:"status" gorm:"type:varchar(16);default:ongoing"` // ongoing | completed
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// DelayReport records why a task slipped.
type DelayReport struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	EmployeeID  string    `json:"employee_id" gorm:"index;not null"`
	ProjectID   uint      `json:"project_id" gorm:"index"`
	TaskID      string    `json:"task_id"`
	Date        time.Time `json:"date" gorm:"not null"`
	Reason      string    `json:"reason" gorm:"not null"`
	Category    string    `json:"category" gorm:"type:varchar(16);not null"` // absence | workload | technical | other
	Description string    `json:"description"`
	Status      string    `json:"status" gorm:"type:varchar(16);default:pending"` // pending | reviewed | resolved
	ReviewedBy  string    `json:"reviewed_by"`
	Resolution  string    `json:"resolution"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmployeePerformance is the per-employee delivery tally kept up to date by
// the employee service.
type EmployeePerformance struct {
	EmployeeID      string    `json:"employee_id" gorm:"primaryKey"`
	OnTimeDelivery  int       `json:"on_time_delivery" gorm:"default:0"`
	DelayedProjects int       `json:"delayed_projects" gorm:"default:0"`
	TotalProjects   int       `json:"total_projects" gorm:"default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
