package models

import "time"

type NotificationType string

const (
	NotifBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotifMenuUpdate       NotificationType = "MENU_UPDATE"
	NotifRequestStatus    NotificationType = "REQUEST_STATUS"
	NotifPaymentUpdate    NotificationType = "PAYMENT_UPDATE"
	NotifNewOrder         NotificationType = "NEW_ORDER"
)

// Notification is a per-user inbox row. RelatedID loosely references the
// entity that triggered the event (reservation, invoice, request).
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"index" json:"userId"`
	Title     string           `gorm:"size:255" json:"title"`
	Message   string           `gorm:"type:text" json:"message"`
	Type      NotificationType `gorm:"size:30" json:"type"`
	RelatedID *uint            `json:"relatedId,omitempty"`
	IsRead    bool             `gorm:"default:false" json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
