package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lesmarvelous-backend/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates an account with a bcrypt-hashed password.
func (s *UserService) Register(email, password, displayName, role string) (*models.User, error) {
	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:       email,
		Password:    string(hash),
		DisplayName: displayName,
		Role:        role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks the credentials. Both failure modes collapse into
// ErrInvalidCredentials.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ProfileUpdate carries the optional profile changes. Changing the password
// requires the current one.
type ProfileUpdate struct {
	DisplayName     string
	Email           string
	CurrentPassword string
	NewPassword     string
}

func (s *UserService) UpdateProfile(id uint, update ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, err
	}

	if update.DisplayName != "" {
		user.DisplayName = update.DisplayName
	}
	if update.Email != "" {
		user.Email = update.Email
	}
	if update.NewPassword != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(update.CurrentPassword)) != nil {
			return nil, ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(update.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}

	if err := s.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
