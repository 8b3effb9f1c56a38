package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Edmond40/hotel-management-system/models"
	"github.com/Edmond40/hotel-management-system/utils"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Signup registers a new account and returns it with a signed token.
func (s *AuthService) Signup(name, email, password string, role models.Role) (*models.User, string, error) {
	fields := map[string]string{}
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if len(name) < 2 {
		fields["name"] = "name must be at least 2 characters"
	}
	if !strings.Contains(email, "@") {
		fields["email"] = "invalid email address"
	}
	if len(password) < 6 {
		fields["password"] = "password must be at least 6 characters"
	}
	if role == "" {
		role = models.RoleGuest
	}
	if !role.Valid() {
		fields["role"] = fmt.Sprintf("invalid role %q", role)
	}
	if len(fields) > 0 {
		return nil, "", &ValidationError{Fields: fields}
	}

	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", ErrEmailInUse
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Signin verifies credentials and returns the account with a fresh token.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *AuthService) Signin(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
