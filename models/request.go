package models

import "time"

type RequestStatus string

const (
	RequestPending   RequestStatus = "Pending"
	RequestConfirmed RequestStatus = "Confirmed"
	RequestCompleted RequestStatus = "Completed"
	RequestCancelled RequestStatus = "Cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestConfirmed, RequestCompleted, RequestCancelled:
		return true
	}
	return false
}

// Request is a guest meal/service order against a menu item.
type Request struct {
	ID                  uint          `gorm:"primaryKey" json:"id"`
	UserID              uint          `gorm:"index" json:"userId"`
	MenuItemID          *uint         `gorm:"index" json:"menuItemId,omitempty"`
	Quantity            int           `gorm:"default:1" json:"quantity"`
	SpecialInstructions string        `gorm:"type:text" json:"specialInstructions"`
	Status              RequestStatus `gorm:"size:20;default:Pending" json:"status"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`

	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menuItem,omitempty"`
}
