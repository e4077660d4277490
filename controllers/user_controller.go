package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lesmarvelous-backend/models"
	"lesmarvelous-backend/services"
	"lesmarvelous-backend/utils"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

type UpdateProfileRequest struct {
	DisplayName     string `json:"displayName" binding:"omitempty,min=2"`
	Email           string `json:"email" binding:"omitempty,email"`
	CurrentPassword string `json:"currentPassword" binding:"omitempty,min=6"`
	NewPassword     string `json:"newPassword" binding:"omitempty,min=6"`
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body UpdateProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if body.NewPassword != "" && body.CurrentPassword == "" {
		jsonError(c, http.StatusBadRequest, "currentPassword is required to change the password")
		return
	}

	user, err := uc.users.UpdateProfile(userID, services.ProfileUpdate{
		DisplayName:     body.DisplayName,
		Email:           body.Email,
		CurrentPassword: body.CurrentPassword,
		NewPassword:     body.NewPassword,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			jsonError(c, http.StatusBadRequest, "Invalid credentials")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error updating profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

// List returns all accounts; admin only.
func (uc *UserController) List(c *gin.Context) {
	role, _ := c.Get("user_role")
	if role != models.RoleAdmin {
		jsonError(c, http.StatusForbidden, "admin access required")
		return
	}

	users, err := uc.users.List()
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Error fetching users")
		return
	}
	c.JSON(http.StatusOK, users)
}
