package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lesmarvelous-backend/models"
	"lesmarvelous-backend/services"
	"lesmarvelous-backend/utils"
)

type ProjectController struct {
	projects *services.ProjectService
}

func NewProjectController(projects *services.ProjectService) *ProjectController {
	return &ProjectController{projects: projects}
}

// ProjectRequest is the create payload; every common field is validated here.
type ProjectRequest struct {
	Type         string  `json:"type" binding:"required,oneof=wedding studio corporate"`
	Couple       string  `json:"couple" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	Email        string  `json:"email" binding:"omitempty,email"`
	Phone        string  `json:"phone"`
	Country      string  `json:"country" binding:"required,oneof=fr cm"`
	DeliveryDays int     `json:"deliveryDays" binding:"required,min=1"`
	Status       string  `json:"status" binding:"omitempty,oneof=en_cours en_retard termine a_venir"`
	Notes        string  `json:"notes"`
	Price        float64 `json:"price"`
	Location     string  `json:"location"`
	Priority     string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	SeasonID     string  `json:"seasonId"`

	// Wedding variant
	WeddingType string          `json:"weddingType" binding:"omitempty,oneof=french cameroonian"`
	Formula     *models.Formula `json:"formula"`

	// Studio variant
	SessionType string   `json:"sessionType" binding:"omitempty,oneof=portrait couple family children pregnancy newborn fashion product corporate event graduation artistic boudoir pet other"`
	HDPhotos    int      `json:"hdPhotos"`
	WebPhotos   int      `json:"webPhotos"`
	Backdrop    string   `json:"backdrop"`
	Props       []string `json:"props"`
	Duration    int      `json:"duration"`
	WithMakeup  bool     `json:"withMakeup"`

	// Corporate variant
	EventType    string                        `json:"eventType" binding:"omitempty,oneof=conference team_building product_launch corporate_portrait seminar training award_ceremony gala exhibition press_conference inauguration anniversary workshop networking other"`
	Company      *models.Company               `json:"company"`
	Attendees    int                           `json:"attendees"`
	Requirements []string                      `json:"requirements"`
	Deliverables *models.CorporateDeliverables `json:"deliverables"`
}

func (body *ProjectRequest) toModel() (*models.Project, error) {
	date, err := parseDate(body.Date)
	if err != nil {
		return nil, err
	}

	project := models.Project{
		Type:         models.ProjectType(body.Type),
		Couple:       body.Couple,
		Date:         date,
		Email:        body.Email,
		Phone:        body.Phone,
		Country:      body.Country,
		DeliveryDays: body.DeliveryDays,
		Status:       models.StatusEnCours,
		Notes:        body.Notes,
		Price:        body.Price,
		Location:     body.Location,
		Priority:     models.PriorityMedium,
		SeasonID:     body.SeasonID,
	}
	if body.Status != "" {
		project.Status = models.ProjectStatus(body.Status)
	}
	if body.Priority != "" {
		project.Priority = body.Priority
	}

	switch project.Type {
	case models.ProjectWedding:
		project.WeddingType = body.WeddingType
		if body.Formula != nil {
			project.Formula = *body.Formula
		}
	case models.ProjectStudio:
		project.SessionType = body.SessionType
		project.HDPhotos = body.HDPhotos
		project.WebPhotos = body.WebPhotos
		project.Backdrop = body.Backdrop
		project.Props = body.Props
		project.Duration = body.Duration
		project.WithMakeup = body.WithMakeup
	case models.ProjectCorporate:
		project.EventType = body.EventType
		if body.Company != nil {
			project.Company = *body.Company
		}
		project.Attendees = body.Attendees
		project.Requirements = body.Requirements
		if body.Deliverables != nil {
			project.Deliverables = *body.Deliverables
		}
		project.Duration = body.Duration
	}

	return &project, nil
}

func (pc *ProjectController) List(c *gin.Context) {
	projects, err := pc.projects.List()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Error fetching projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (pc *ProjectController) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		jsonError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := pc.projects.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(c, http.StatusNotFound, "Project not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error fetching project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (pc *ProjectController) Create(c *gin.Context) {
	var body ProjectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	project, err := body.toModel()
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid date format (use RFC3339 or YYYY-MM-DD)")
		return
	}

	if err := pc.projects.Create(project); err != nil {
		jsonError(c, http.StatusInternalServerError, "Error creating project")
		return
	}
	c.JSON(http.StatusCreated, project)
}

// ProjectUpdateRequest is the update payload. Absent fields leave the stored
// values untouched.
type ProjectUpdateRequest struct {
	Type         *string  `json:"type" binding:"omitempty,oneof=wedding studio corporate"`
	Couple       *string  `json:"couple"`
	Date         *string  `json:"date"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	Phone        *string  `json:"phone"`
	Country      *string  `json:"country" binding:"omitempty,oneof=fr cm"`
	DeliveryDays *int     `json:"deliveryDays"`
	Status       *string  `json:"status" binding:"omitempty,oneof=en_cours en_retard termine a_venir"`
	Notes        *string  `json:"notes"`
	Price        *float64 `json:"price"`
	Location     *string  `json:"location"`
	Priority     *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	SeasonID     *string  `json:"seasonId"`

	WeddingType *string         `json:"weddingType" binding:"omitempty,oneof=french cameroonian"`
	Formula     *models.Formula `json:"formula"`

	SessionType *string  `json:"sessionType" binding:"omitempty,oneof=portrait couple family children pregnancy newborn fashion product corporate event graduation artistic boudoir pet other"`
	HDPhotos    *int     `json:"hdPhotos"`
	WebPhotos   *int     `json:"webPhotos"`
	Backdrop    *string  `json:"backdrop"`
	Props       []string `json:"props"`
	Duration    *int     `json:"duration"`
	WithMakeup  *bool    `json:"withMakeup"`

	EventType    *string                       `json:"eventType" binding:"omitempty,oneof=conference team_building product_launch corporate_portrait seminar training award_ceremony gala exhibition press_conference inauguration anniversary workshop networking other"`
	Company      *models.Company               `json:"company"`
	Attendees    *int                          `json:"attendees"`
	Requirements []string                      `json:"requirements"`
	Deliverables *models.CorporateDeliverables `json:"deliverables"`
}

func (body *ProjectUpdateRequest) toChanges() (services.ProjectChanges, error) {
	changes := services.ProjectChanges{
		Couple:       body.Couple,
		Email:        body.Email,
		Phone:        body.Phone,
		Country:      body.Country,
		Notes:        body.Notes,
		Price:        body.Price,
		Location:     body.Location,
		Priority:     body.Priority,
		SeasonID:     body.SeasonID,
		WeddingType:  body.WeddingType,
		Formula:      body.Formula,
		SessionType:  body.SessionType,
		HDPhotos:     body.HDPhotos,
		WebPhotos:    body.WebPhotos,
		Backdrop:     body.Backdrop,
		Props:        body.Props,
		Duration:     body.Duration,
		WithMakeup:   body.WithMakeup,
		EventType:    body.EventType,
		Company:      body.Company,
		Attendees:    body.Attendees,
		Requirements: body.Requirements,
		Deliverables: body.Deliverables,
	}
	if body.Type != nil {
		t := models.ProjectType(*body.Type)
		changes.Type = &t
	}
	if body.Date != nil {
		date, err := parseDate(*body.Date)
		if err != nil {
			return changes, errors.New("invalid date format (use RFC3339 or YYYY-MM-DD)")
		}
		changes.Date = &date
	}
	if body.DeliveryDays != nil {
		if *body.DeliveryDays < 1 {
			return changes, errors.New("deliveryDays must be at least 1")
		}
		changes.DeliveryDays = body.DeliveryDays
	}
	if body.Status != nil {
		s := models.ProjectStatus(*body.Status)
		changes.Status = &s
	}
	return changes, nil
}

func (pc *ProjectController) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		jsonError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	var body ProjectUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	changes, err := body.toChanges()
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	project, err := pc.projects.Update(id, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(c, http.StatusNotFound, "Project not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error updating project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (pc *ProjectController) Delete(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		jsonError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := pc.projects.Delete(id); err != nil {
		jsonError(c, http.StatusInternalServerError, "Error deleting project")
		return
	}
	c.Status(http.StatusNoContent)
}

type StatusChangeRequest struct {
	Status string `json:"status" binding:"required,oneof=en_cours en_retard termine a_venir"`
}

// UpdateStatus is the Kanban drag endpoint.
func (pc *ProjectController) UpdateStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		jsonError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	var body StatusChangeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	userID, _ := utils.GetUserIDFromContext(c)
	project, err := pc.projects.UpdateStatus(id, models.ProjectStatus(body.Status), userName(c, userID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			jsonError(c, http.StatusNotFound, "Project not found")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error updating project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func userName(c *gin.Context, userID uint) string {
	if name, ok := c.Get("user_name"); ok {
		if s, ok := name.(string); ok {
			return s
		}
	}
	if userID == 0 {
		return ""
	}
	return "user:" + strconv.FormatUint(uint64(userID), 10)
}
