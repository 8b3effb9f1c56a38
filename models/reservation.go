package models

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCheckedIn ReservationStatus = "CHECKED_IN"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationCompleted ReservationStatus = "COMPLETED"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCheckedIn,
		ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

// Active reports whether the reservation still counts against the guest:
// not cancelled and not completed.
func (s ReservationStatus) Active() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCheckedIn:
		return true
	}
	return false
}

// OccupiesRoom reports whether the reservation blocks the room for other
// bookings. Only CONFIRMED and CHECKED_IN reservations participate in
// conflict checks.
func (s ReservationStatus) OccupiesRoom() bool {
	return s == ReservationConfirmed || s == ReservationCheckedIn
}

// OccupyingStatuses is the status set used by overlap queries.
var OccupyingStatuses = []ReservationStatus{ReservationConfirmed, ReservationCheckedIn}

// Reservation holds a room for a [CheckIn, CheckOut) interval. CheckOut is
// exclusive, so a booking may start on the day another one ends.
type Reservation struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	UserID    uint              `gorm:"index" json:"userId"`
	RoomID    uint              `gorm:"index" json:"roomId"`
	CheckIn   time.Time         `json:"checkIn"`
	CheckOut  time.Time         `json:"checkOut"`
	Status    ReservationStatus `gorm:"size:20;index;default:PENDING" json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
