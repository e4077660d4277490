package services

import (
	"time"

	"gorm.io/gorm"

	"lesmarvelous-backend/models"
)

type TaskService struct {
	DB *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{DB: db}
}

// ListByProject returns a project's tasks in due-date order.
func (s *TaskService) ListByProject(projectID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := s.DB.Where("project_id = ?", projectID).Order("due_date asc").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create inserts a task under its parent project. The parent must exist and
// be a wedding project, the only variant that owns tasks. now is used for the
// completion stamp when the task arrives already completed.
func (s *TaskService) Create(task *models.Task, now time.Time) error {
	var project models.Project
	if err := s.DB.First(&project, task.ProjectID).Error; err != nil {
		return err
	}
	if project.Type != models.ProjectWedding {
		return ErrNotWeddingProject
	}
	stampCompletion(task, nil, now)
	return s.DB.Create(task).Error
}

// TaskChanges carries the optional field updates for a task. Nil fields are
// left untouched.
type TaskChanges struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *models.TaskStatus
	AssignedTo  *string
	Priority    *string
}

func (c TaskChanges) apply(t *models.Task) {
	if c.Title != nil {
		t.Title = *c.Title
	}
	if c.Description != nil {
		t.Description = *c.Description
	}
	if c.DueDate != nil {
		t.DueDate = *c.DueDate
	}
	if c.Status != nil {
		t.Status = *c.Status
	}
	if c.AssignedTo != nil {
		t.AssignedTo = *c.AssignedTo
	}
	if c.Priority != nil {
		t.Priority = *c.Priority
	}
}

// Update applies the provided fields; omitted fields keep their stored
// values. Moving a task into completed status stamps its completion date at
// now; moving it out clears the stamp.
func (s *TaskService) Update(id uint, changes TaskChanges, now time.Time) (*models.Task, error) {
	var task models.Task
	if err := s.DB.First(&task, id).Error; err != nil {
		return nil, err
	}
	previous := task.CompletedDate
	changes.apply(&task)
	stampCompletion(&task, previous, now)
	if err := s.DB.Save(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Delete(id uint) error {
	return s.DB.Delete(&models.Task{}, id).Error
}

// stampCompletion keeps the invariant: completed implies a completion date.
func stampCompletion(task *models.Task, previous *time.Time, now time.Time) {
	if task.Status == models.TaskCompleted {
		if previous != nil {
			task.CompletedDate = previous
			return
		}
		task.CompletedDate = &now
		return
	}
	task.CompletedDate = nil
}
