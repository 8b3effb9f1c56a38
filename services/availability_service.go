package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Edmond40/hotel-management-system/models"
)

// AvailabilityService answers whether a room can be booked for a date range.
// Intervals are half-open [checkIn, checkOut): a reservation ending on a day
// does not conflict with one starting that day.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// FindConflicts returns the CONFIRMED/CHECKED_IN reservations on roomID whose
// interval overlaps [checkIn, checkOut). excludeID, when non-zero, removes one
// reservation from consideration so an update can check against all others.
func (s *AvailabilityService) FindConflicts(roomID uint, checkIn, checkOut time.Time, excludeID uint) ([]models.Reservation, error) {
	return findConflicts(s.DB, roomID, checkIn, checkOut, excludeID)
}

// findConflicts is shared with the reservation transaction paths, which re-run
// the check on their own tx handle.
func findConflicts(db *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) ([]models.Reservation, error) {
	q := db.
		Where("room_id = ?", roomID).
		Where("status IN ?", models.OccupyingStatuses).
		// Half-open overlap: existing.checkIn < requested.checkOut AND
		// existing.checkOut > requested.checkIn.
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var conflicts []models.Reservation
	if err := q.Order("check_in ASC").Find(&conflicts).Error; err != nil {
		return nil, fmt.Errorf("failed to query conflicting reservations: %w", err)
	}
	return conflicts, nil
}

// AvailableRooms lists rooms with status AVAILABLE and no conflicting
// reservation for the range, ordered by room number.
func (s *AvailabilityService) AvailableRooms(checkIn, checkOut time.Time) ([]models.Room, error) {
	booked := s.DB.Model(&models.Reservation{}).
		Select("room_id").
		Where("status IN ?", models.OccupyingStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)

	var rooms []models.Room
	err := s.DB.
		Where("status = ?", models.RoomAvailable).
		Where("available = ?", true).
		Where("id NOT IN (?)", booked).
		Order("number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query available rooms: %w", err)
	}
	return rooms, nil
}
