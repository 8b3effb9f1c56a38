package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Edmond40/hotel-management-system/models"
)

// defaultPassword is assigned when an admin creates an account without one;
// the guest is expected to change it.
const defaultPassword = "changeme123"

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("name ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return users, nil
}

// UserParams is the admin-side write shape. Nil pointers mean "leave as is"
// on update.
type UserParams struct {
	Name      *string
	Email     *string
	Password  *string
	Role      *models.Role
	StaffRole *string
}

func (s *UserService) Create(p UserParams) (*models.User, error) {
	fields := map[string]string{}
	if p.Name == nil || strings.TrimSpace(*p.Name) == "" {
		fields["name"] = "name is required"
	}
	if p.Email == nil || !strings.Contains(*p.Email, "@") {
		fields["email"] = "valid email is required"
	}
	role := models.RoleGuest
	if p.Role != nil {
		role = *p.Role
	}
	if !role.Valid() {
		fields["role"] = fmt.Sprintf("invalid role %q", role)
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	password := defaultPassword
	if p.Password != nil && *p.Password != "" {
		password = *p.Password
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:         strings.TrimSpace(*p.Name),
		Email:        strings.ToLower(strings.TrimSpace(*p.Email)),
		PasswordHash: string(hash),
		Role:         role,
		StaffRole:    p.StaffRole,
		IsActive:     true,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *UserService) Update(id uint, p UserParams) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}

	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*p.Email))
	}
	if p.Role != nil {
		if !p.Role.Valid() {
			return nil, fieldError("role", fmt.Sprintf("invalid role %q", *p.Role))
		}
		updates["role"] = *p.Role
	}
	if p.StaffRole != nil {
		updates["staff_role"] = *p.StaffRole
	}
	if p.Password != nil && *p.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*p.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password_hash"] = string(hash)
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
			if isDuplicateErr(err) {
				return nil, ErrEmailInUse
			}
			return nil, fmt.Errorf("failed to update user %d: %w", id, err)
		}
	}

	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return &user, nil
}

func (s *UserService) Delete(id uint) error {
	res := s.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// isDuplicateErr sniffs unique-constraint violations across MySQL and sqlite,
// the way the driver surfaces them as text.
func isDuplicateErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
