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

type EmployeeController struct {
	employees *services.EmployeeService
}

func NewEmployeeController(employees *services.EmployeeService) *EmployeeController {
	return &EmployeeController{employees: employees}
}

type EmployeeRequest struct {
	Name       string   `json:"name" binding:"required"`
	Age        int      `json:"age"`
	Roles      []string `json:"role" binding:"required,min=1"`
	Email      string   `json:"email" binding:"required,email"`
	Phone      string   `json:"phone"`
	Avatar     string   `json:"avatar"`
	StartDate  string   `json:"startDate" binding:"required"`
	Department string   `json:"department" binding:"required"`
	Status     string   `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (body *EmployeeRequest) toModel() (*models.Employee, error) {
	start, err := parseDate(body.StartDate)
	if err != nil {
		return nil, err
	}
	return &models.Employee{
		Name:       body.Name,
		Age:        body.Age,
		Roles:      body.Roles,
		Email:      body.Email,
		Phone:      body.Phone,
		Avatar:     body.Avatar,
		StartDate:  start,
		Department: body.Department,
		Status:     body.Status,
	}, nil
}

func (ec *EmployeeController) List(c *gin.Context) {
	employees, err := ec.employees.List()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Error fetching employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (ec *EmployeeController) Get(c *gin.Context) {
	employee, err := ec.employees.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(c, http.StatusNotFound, "Employee not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error fetching employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (ec *EmployeeController) Create(c *gin.Context) {
	var body EmployeeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	employee, err := body.toModel()
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid date format (use RFC3339 or YYYY-MM-DD)")
		return
	}

	if err := ec.employees.Create(employee); err != nil {
		jsonError(c, http.StatusInternalServerError, "Error creating employee")
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (ec *EmployeeController) Update(c *gin.Context) {
	var body EmployeeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	fields, err := body.toModel()
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid date format (use RFC3339 or YYYY-MM-DD)")
		return
	}

	employee, err := ec.employees.Update(c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(c, http.StatusNotFound, "Employee not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error updating employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (ec *EmployeeController) Delete(c *gin.Context) {
	if err := ec.employees.Delete(c.Param("id")); err != nil {
		jsonError(c, http.StatusInternalServerError, "Error deleting employee")
		return
	}
	c.Status(http.StatusNoContent)
}

type StartSessionRequest struct {
	ProjectID uint   `json:"projectId"`
	TaskID    string `json:"taskId" binding:"required"`
	Notes     string `json:"notes"`
}

func (ec *EmployeeController) StartSession(c *gin.Context) {
	var body StartSessionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	session, err := ec.employees.StartSession(c.Param("id"), body.ProjectID, body.TaskID, body.Notes, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(c, http.StatusNotFound, "Employee not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error starting session")
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (ec *EmployeeController) StopSession(c *gin.Context) {
	session, err := ec.employees.StopSession(c.Param("id"), time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(c, http.StatusNotFound, "Session not found")
			return
		}
		if errors.Is(err, services.ErrSessionClosed) {
			jsonError(c, http.StatusBadRequest, err.Error())
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error stopping session")
		return
	}
	c.JSON(http.StatusOK, session)
}

type DelayReportRequest struct {
	EmployeeID  string `json:"employeeId" binding:"required"`
	ProjectID   uint   `json:"projectId"`
	TaskID      string `json:"taskId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=absence workload technical other"`
	Description string `json:"description"`
}

func (ec *EmployeeController) ReportDelay(c *gin.Context) {
	var body DelayReportRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	date, err := parseDate(body.Date)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid date format (use RFC3339 or YYYY-MM-DD)")
		return
	}

	report := models.DelayReport{
		EmployeeID:  body.EmployeeID,
		ProjectID:   body.ProjectID,
		TaskID:      body.TaskID,
		Date:        date,
		Reason:      body.Reason,
		Category:    body.Category,
		Description: body.Description,
	}
	if err := ec.employees.ReportDelay(&report); err != nil {
		jsonError(c, http.StatusInternalServerError, "Error creating delay report")
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (ec *EmployeeController) Performance(c *gin.Context) {
	perf, err := ec.employees.Performance(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Error fetching performance")
		return
	}
	c.JSON(http.StatusOK, perf)
}
