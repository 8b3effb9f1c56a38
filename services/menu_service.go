package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Edmond40/hotel-management-system/models"
)

type MenuService struct {
	DB       *gorm.DB
	Notifier *NotificationService
}

func NewMenuService(db *gorm.DB, notifier *NotificationService) *MenuService {
	return &MenuService{DB: db, Notifier: notifier}
}

func (s *MenuService) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.Order("category ASC, name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve menu items: %w", err)
	}
	return items, nil
}

// GroupedByCategory returns the guest-facing menu: available items only,
// keyed by category.
func (s *MenuService) GroupedByCategory() (map[string][]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.DB.Where("available = ?", true).Order("category ASC, name ASC").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve menu items: %w", err)
	}

	grouped := map[string][]models.MenuItem{}
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped, nil
}

func (s *MenuService) Create(item *models.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return fieldError("name", "name is required")
	}
	if item.Price < 0 {
		return fieldError("price", "price must not be negative")
	}
	if err := s.DB.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	if s.Notifier != nil {
		s.Notifier.NotifyMenuUpdate(item.Name, true)
	}
	return nil
}

// MenuItemParams uses pointers so a PUT can change a subset of fields.
type MenuItemParams struct {
	Name        *string
	Category    *string
	Price       *float64
	Available   *bool
	Description *string
}

func (s *MenuService) Update(id uint, p MenuItemParams) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load menu item %d: %w", id, err)
	}

	updates := map[string]interface{}{}
	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		updates["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Category != nil {
		updates["category"] = *p.Category
	}
	if p.Price != nil {
		if *p.Price < 0 {
			return nil, fieldError("price", "price must not be negative")
		}
		updates["price"] = *p.Price
	}
	if p.Available != nil {
		updates["available"] = *p.Available
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&item).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update menu item %d: %w", id, err)
		}
		if err := s.DB.First(&item, id).Error; err != nil {
			return nil, fmt.Errorf("failed to reload menu item: %w", err)
		}
		if s.Notifier != nil {
			s.Notifier.NotifyMenuUpdate(item.Name, false)
		}
	}
	return &item, nil
}

func (s *MenuService) Delete(id uint) error {
	res := s.DB.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete menu item %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
