package models

import (
	"time"

	"gorm.io/datatypes"
)

// HotelSetting is the single explicit configuration record for the property.
// Preferences holds free-form UI/site preferences as a JSON blob.
type HotelSetting struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255" json:"name"`
	Address     string         `gorm:"type:text" json:"address"`
	Phone       string         `gorm:"size:50" json:"phone"`
	Email       string         `gorm:"size:150" json:"email"`
	Website     string         `gorm:"size:255" json:"website"`
	Preferences datatypes.JSON `json:"preferences,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
