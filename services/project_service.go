package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lesmarvelous-backend/models"
)

type ProjectService struct {
	DB *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{DB: db}
}

// List returns all projects with their tasks, newest event first.
func (s *ProjectService) List() ([]models.Project, error) {
	var projects []models.Project
	err := s.DB.Preload("Tasks").Preload("Documents").Preload("Tags").
		Order("date desc").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) Get(id uint) (*models.Project, error) {
	var project models.Project
	err := s.DB.Preload("Tasks").Preload("Documents").Preload("Tags").
		Preload("ActivityLog").First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Create(project *models.Project) error {
	if err := s.DB.Create(project).Error; err != nil {
		return err
	}
	return s.logActivity(project.ID, "created", "Projet créé", "")
}

// ProjectChanges carries the optional field updates for a project. Nil fields
// are left untouched, so a caller can change one column without resending the
// rest.
type ProjectChanges struct {
	Type         *models.ProjectType
	Couple       *string
	Date         *time.Time
	Email        *string
	Phone        *string
	Country      *string
	DeliveryDays *int
	Status       *models.ProjectStatus
	Notes        *string
	Price        *float64
	Location     *string
	Priority     *string
	SeasonID     *string

	WeddingType *string
	Formula     *models.Formula

	SessionType *string
	HDPhotos    *int
	WebPhotos   *int
	Backdrop    *string
	Props       []string
	Duration    *int
	WithMakeup  *bool

	EventType    *string
	Company      *models.Company
	Attendees    *int
	Requirements []string
	Deliverables *models.CorporateDeliverables
}

func (c ProjectChanges) apply(p *models.Project) {
	if c.Type != nil {
		p.Type = *c.Type
	}
	if c.Couple != nil {
		p.Couple = *c.Couple
	}
	if c.Date != nil {
		p.Date = *c.Date
	}
	if c.Email != nil {
		p.Email = *c.Email
	}
	if c.Phone != nil {
		p.Phone = *c.Phone
	}
	if c.Country != nil {
		p.Country = *c.Country
	}
	if c.DeliveryDays != nil {
		p.DeliveryDays = *c.DeliveryDays
	}
	if c.Status != nil {
		p.Status = *c.Status
	}
	if c.Notes != nil {
		p.Notes = *c.Notes
	}
	if c.Price != nil {
		p.Price = *c.Price
	}
	if c.Location != nil {
		p.Location = *c.Location
	}
	if c.Priority != nil {
		p.Priority = *c.Priority
	}
	if c.SeasonID != nil {
		p.SeasonID = *c.SeasonID
	}
	if c.WeddingType != nil {
		p.WeddingType = *c.WeddingType
	}
	if c.Formula != nil {
		p.Formula = *c.Formula
	}
	if c.SessionType != nil {
		p.SessionType = *c.SessionType
	}
	if c.HDPhotos != nil {
		p.HDPhotos = *c.HDPhotos
	}
	if c.WebPhotos != nil {
		p.WebPhotos = *c.WebPhotos
	}
	if c.Backdrop != nil {
		p.Backdrop = *c.Backdrop
	}
	if c.Props != nil {
		p.Props = c.Props
	}
	if c.Duration != nil {
		p.Duration = *c.Duration
	}
	if c.WithMakeup != nil {
		p.WithMakeup = *c.WithMakeup
	}
	if c.EventType != nil {
		p.EventType = *c.EventType
	}
	if c.Company != nil {
		p.Company = *c.Company
	}
	if c.Attendees != nil {
		p.Attendees = *c.Attendees
	}
	if c.Requirements != nil {
		p.Requirements = c.Requirements
	}
	if c.Deliverables != nil {
		p.Deliverables = *c.Deliverables
	}
}

// Update applies the provided fields to an existing project; omitted fields
// keep their stored values. Returns gorm.ErrRecordNotFound when the id is
// unknown.
func (s *ProjectService) Update(id uint, changes ProjectChanges) (*models.Project, error) {
	var project models.Project
	if err := s.DB.First(&project, id).Error; err != nil {
		return nil, err
	}
	changes.apply(&project)
	if err := s.DB.Save(&project).Error; err != nil {
		return nil, err
	}
	if err := s.logActivity(project.ID, "updated", "Projet modifié", ""); err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes a project and everything it owns in one transaction.
func (s *ProjectService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ActivityLog{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM project_tags WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}

// UpdateStatus handles the Kanban drag: status change plus an audit entry.
func (s *ProjectService) UpdateStatus(id uint, status models.ProjectStatus, user string) (*models.Project, error) {
	var project models.Project
	if err := s.DB.First(&project, id).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&project).Update("status", status).Error; err != nil {
		return nil, err
	}
	if err := s.logActivity(id, "status_change", "Statut changé en "+string(status), user); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *ProjectService) logActivity(projectID uint, kind, message, user string) error {
	entry := models.ActivityLog{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Type:      kind,
		Message:   message,
		User:      user,
		Timestamp: time.Now().UTC(),
	}
	return s.DB.Create(&entry).Error
}
