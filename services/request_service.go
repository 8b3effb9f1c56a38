package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Edmond40/hotel-management-system/models"
)

// RequestService handles guest meal/service requests.
type RequestService struct {
	DB       *gorm.DB
	Notifier *NotificationService
}

func NewRequestService(db *gorm.DB, notifier *NotificationService) *RequestService {
	return &RequestService{DB: db, Notifier: notifier}
}

func (s *RequestService) GetAll() ([]models.Request, error) {
	var requests []models.Request
	err := s.DB.Preload("User").Preload("MenuItem").Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve requests: %w", err)
	}
	return requests, nil
}

func (s *RequestService) ListForUser(userID uint) ([]models.Request, error) {
	var requests []models.Request
	err := s.DB.Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve requests: %w", err)
	}
	return requests, nil
}

// Create places a new meal request for a guest and notifies all admins.
func (s *RequestService) Create(user models.User, menuItemID uint, quantity int, specialInstructions string) (*models.Request, error) {
	if menuItemID == 0 {
		return nil, fieldError("menuItemId", "menuItemId is required")
	}
	if quantity <= 0 {
		quantity = 1
	}

	var item models.MenuItem
	if err := s.DB.First(&item, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fieldError("menuItemId", "menu item not found")
		}
		return nil, fmt.Errorf("failed to load menu item %d: %w", menuItemID, err)
	}
	if !item.Available {
		return nil, fieldError("menuItemId", "menu item is not available")
	}

	request := models.Request{
		UserID:              user.ID,
		MenuItemID:          &menuItemID,
		Quantity:            quantity,
		SpecialInstructions: specialInstructions,
		Status:              models.RequestPending,
	}
	if err := s.DB.Create(&request).Error; err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if err := s.DB.Preload("MenuItem").First(&request, request.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload request: %w", err)
	}

	if s.Notifier != nil {
		s.Notifier.NotifyAdminNewOrder(user.Name, item.Name, request.Quantity, request.ID)
	}
	return &request, nil
}

// UpdateStatus transitions a request and notifies its owner.
func (s *RequestService) UpdateStatus(id uint, status models.RequestStatus) (*models.Request, error) {
	if !status.Valid() {
		return nil, fieldError("status", fmt.Sprintf("invalid status %q", status))
	}

	var request models.Request
	if err := s.DB.Preload("MenuItem").First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load request %d: %w", id, err)
	}

	if err := s.DB.Model(&request).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update request %d: %w", id, err)
	}
	request.Status = status

	if s.Notifier != nil && request.MenuItem != nil {
		s.Notifier.NotifyRequestStatusChange(request.UserID, request.ID, status, request.MenuItem.Name)
	}
	return &request, nil
}

func (s *RequestService) Delete(id uint) error {
	res := s.DB.Delete(&models.Request{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete request %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
