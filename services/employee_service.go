package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lesmarvelous-backend/models"
)

type EmployeeService struct {
	DB *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{DB: db}
}

func (s *EmployeeService) List() ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.DB.Order("name asc").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *EmployeeService) Get(id string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *EmployeeService) Create(employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	if employee.Status == "" {
		employee.Status = "active"
	}
	return s.DB.Create(employee).Error
}

func (s *EmployeeService) Update(id string, fields *models.Employee) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	fields.ID = employee.ID
	fields.CreatedAt = employee.CreatedAt
	if err := s.DB.Model(&employee).Select("*").Omit("created_at").Updates(fields).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes the employee and the tracking rows hanging off it.
func (s *EmployeeService) Delete(id string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.WorkSession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).Delete(&models.DelayReport{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).Delete(&models.EmployeePerformance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Employee{}, "id = ?", id).Error
	})
}

// StartSession opens a work session for an employee on a project task.
func (s *EmployeeService) StartSession(employeeID string, projectID uint, taskID, notes string, now time.Time) (*models.WorkSession, error) {
	if _, err := s.Get(employeeID); err != nil {
		return nil, err
	}
	session := models.WorkSession{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		ProjectID:  projectID,
		TaskID:     taskID,
		StartTime:  now,
		Status:     "ongoing",
		Notes:      notes,
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// StopSession closes a session and records its duration in seconds.
func (s *EmployeeService) StopSession(sessionID string, now time.Time) (*models.WorkSession, error) {
	var session models.WorkSession
	if err := s.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		return nil, err
	}
	if session.Status == "completed" {
		return nil, ErrSessionClosed
	}
	session.EndTime = &now
	session.Duration = int(now.Sub(session.StartTime).Seconds())
	session.Status = "completed"
	if err := s.DB.Save(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// ReportDelay files a delay report and bumps the employee's delayed tally.
func (s *EmployeeService) ReportDelay(report *models.DelayReport) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.Status == "" {
		report.Status = "pending"
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		return s.bumpPerformance(tx, report.EmployeeID, func(p *models.EmployeePerformance) {
			p.DelayedProjects++
			p.TotalProjects++
		})
	})
}

// RecordDelivery counts an on-time delivery for the employee.
func (s *EmployeeService) RecordDelivery(employeeID string) error {
	return s.bumpPerformance(s.DB, employeeID, func(p *models.EmployeePerformance) {
		p.OnTimeDelivery++
		p.TotalProjects++
	})
}

func (s *EmployeeService) Performance(employeeID string) (*models.EmployeePerformance, error) {
	var perf models.EmployeePerformance
	err := s.DB.First(&perf, "employee_id = ?", employeeID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &models.EmployeePerformance{EmployeeID: employeeID}, nil
		}
		return nil, err
	}
	return &perf, nil
}

func (s *EmployeeService) bumpPerformance(db *gorm.DB, employeeID string, apply func(*models.EmployeePerformance)) error {
	var perf models.EmployeePerformance
	err := db.First(&perf, "employee_id = ?", employeeID).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	perf.EmployeeID = employeeID
	apply(&perf)
	return db.Save(&perf).Error
}
