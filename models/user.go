package models

import "time"

// Role is the closed set of account roles. Handlers compare against these
// constants, never raw strings.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleGuest Role = "GUEST"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleGuest:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:150" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"` // never returned in JSON
	Role         Role      `gorm:"size:20;default:GUEST" json:"role"`
	StaffRole    *string   `gorm:"size:100" json:"staffRole,omitempty"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
