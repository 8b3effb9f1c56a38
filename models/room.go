package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
	RoomCleaning    RoomStatus = "CLEANING"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomCleaning:
		return true
	}
	return false
}

// AmenityList is an ordered list of amenity tags. The column stores the
// comma-joined form; the join/split happens only here, at the persistence
// boundary. API clients always see a JSON array.
type AmenityList []string

func (a AmenityList) Value() (driver.Value, error) {
	return strings.Join(a, ","), nil
}

func (a *AmenityList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*a = AmenityList{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan amenities from %T", value)
	}

	out := AmenityList{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	*a = out
	return nil
}

type Room struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Number      string      `gorm:"uniqueIndex;size:50" json:"number"`
	Type        string      `gorm:"size:50" json:"type"`
	Price       float64     `json:"price"`
	Capacity    int         `gorm:"default:2" json:"capacity"`
	Floor       string      `gorm:"size:10" json:"floor"`
	Description string      `gorm:"type:text" json:"description"`
	Amenities   AmenityList `gorm:"type:varchar(500)" json:"amenities"`
	Status      RoomStatus  `gorm:"size:20;default:AVAILABLE" json:"status"`
	Available   bool        `gorm:"default:true" json:"available"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`

	Reservations []Reservation `gorm:"foreignKey:RoomID" json:"reservations,omitempty"`
}
