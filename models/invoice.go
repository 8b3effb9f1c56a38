package models

import "time"

type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "Unpaid"
	InvoicePaid   InvoiceStatus = "Paid"
)

func (s InvoiceStatus) Valid() bool {
	return s == InvoiceUnpaid || s == InvoicePaid
}

type Invoice struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"index" json:"userId"`
	Amount    float64       `json:"amount"`
	Status    InvoiceStatus `gorm:"size:20;default:Unpaid" json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
