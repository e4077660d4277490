package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lesmarvelous-backend/models"
	"lesmarvelous-backend/services"
)

type TaskController struct {
	tasks *services.TaskService
}

func NewTaskController(tasks *services.TaskService) *TaskController {
	return &TaskController{tasks: tasks}
}

// TaskRequest is the create payload.
type TaskRequest struct {
	ProjectID   uint   `json:"projectId"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=pending in_progress completed"`
	AssignedTo  string `json:"assignedTo" binding:"required"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

func (body *TaskRequest) toModel() (*models.Task, error) {
	due, err := parseDate(body.DueDate)
	if err != nil {
		return nil, err
	}
	task := models.Task{
		ProjectID:   body.ProjectID,
		Title:       body.Title,
		Description: body.Description,
		DueDate:     due,
		Status:      models.TaskStatus(body.Status),
		AssignedTo:  body.AssignedTo,
		Priority:    models.PriorityMedium,
	}
	if body.Priority != "" {
		task.Priority = body.Priority
	}
	return &task, nil
}

func (tc *TaskController) ListByProject(c *gin.Context) {
	projectID, ok := parseUintParam(c, "projectId")
	if !ok {
		jsonError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	tasks, err := tc.tasks.ListByProject(projectID)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Error fetching tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (tc *TaskController) Create(c *gin.Context) {
	var body TaskRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if body.ProjectID == 0 {
		jsonError(c, http.StatusBadRequest, "projectId is required")
		return
	}

	task, err := body.toModel()
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid date format (use RFC3339 or YYYY-MM-DD)")
		return
	}

	if err := tc.tasks.Create(task, time.Now().UTC()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(c, http.StatusNotFound, "Project not found")
			return
		}
		if errors.Is(err, services.ErrNotWeddingProject) {
			jsonError(c, http.StatusBadRequest, err.Error())
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error creating task")
		return
	}
	c.JSON(http.StatusCreated, task)
}

// TaskUpdateRequest is the update payload. Absent fields leave the stored
// values untouched.
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	AssignedTo  *string `json:"assignedTo"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

func (body *TaskUpdateRequest) toChanges() (services.TaskChanges, error) {
	changes := services.TaskChanges{
		Title:       body.Title,
		Description: body.Description,
		AssignedTo:  body.AssignedTo,
		Priority:    body.Priority,
	}
	if body.DueDate != nil {
		due, err := parseDate(*body.DueDate)
		if err != nil {
			return changes, errors.New("invalid date format (use RFC3339 or YYYY-MM-DD)")
		}
		changes.DueDate = &due
	}
	if body.Status != nil {
		s := models.TaskStatus(*body.Status)
		changes.Status = &s
	}
	return changes, nil
}

func (tc *TaskController) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		jsonError(c, http.StatusBadRequest, "invalid task id")
		return
	}

	var body TaskUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	changes, err := body.toChanges()
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := tc.tasks.Update(id, changes, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(c, http.StatusNotFound, "Task not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error updating task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		jsonError(c, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := tc.tasks.Delete(id); err != nil {
		jsonError(c, http.StatusInternalServerError, "Error deleting task")
		return
	}
	c.Status(http.StatusNoContent)
}
