package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lesmarvelous-backend/services"
	"lesmarvelous-backend/utils"
)

type AuthController struct {
	users     *services.UserService
	jwtSecret string
}

func NewAuthController(users *services.UserService, jwtSecret string) *AuthController {
	return &AuthController{users: users, jwtSecret: jwtSecret}
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"displayName" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=admin manager photographer videographer editor"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var body RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, err := ac.users.Register(body.Email, body.Password, body.DisplayName, body.Role)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			jsonError(c, http.StatusBadRequest, "User already exists")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error registering user")
		return
	}

	token, err := utils.GenerateToken(ac.jwtSecret, user.ID, user.Role)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (ac *AuthController) Login(c *gin.Context) {
	var body LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, err := ac.users.Authenticate(body.Email, body.Password)
	if err != nil {
		// Never reveal whether the email exists.
		if errors.Is(err, services.ErrInvalidCredentials) {
			jsonError(c, http.StatusBadRequest, "Invalid credentials")
			return
		}
		jsonError(c, http.StatusInternalServerError, "Error logging in")
		return
	}

	token, err := utils.GenerateToken(ac.jwtSecret, user.ID, user.Role)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Me returns the authenticated user.
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := ac.users.Get(userID)
	if err != nil {
		jsonError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}
