package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Edmond40/hotel-management-system/models"
)

// SettingService manages the single hotel settings record. Get creates the
// record with defaults on first access so PUT always has a row to update.
type SettingService struct {
	DB *gorm.DB
}

func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{DB: db}
}

func (s *SettingService) Get() (*models.HotelSetting, error) {
	var setting models.HotelSetting
	err := s.DB.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.HotelSetting{Name: "Hotel"}
		if err := s.DB.Create(&setting).Error; err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
		return &setting, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &setting, nil
}

// SettingParams uses pointers so a PUT can change a subset of fields.
type SettingParams struct {
	Name        *string
	Address     *string
	Phone       *string
	Email       *string
	Website     *string
	Preferences datatypes.JSON
}

func (s *SettingService) Update(p SettingParams) (*models.HotelSetting, error) {
	setting, err := s.Get()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return nil, fieldError("name", "name must not be empty")
		}
		updates["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Address != nil {
		updates["address"] = *p.Address
	}
	if p.Phone != nil {
		updates["phone"] = *p.Phone
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.Website != nil {
		updates["website"] = *p.Website
	}
	if p.Preferences != nil {
		updates["preferences"] = p.Preferences
	}

	if len(updates) > 0 {
		if err := s.DB.Model(setting).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update settings: %w", err)
		}
		if err := s.DB.First(setting, setting.ID).Error; err != nil {
			return nil, fmt.Errorf("failed to reload settings: %w", err)
		}
	}
	return setting, nil
}
