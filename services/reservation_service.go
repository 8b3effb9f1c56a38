package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Edmond40/hotel-management-system/models"
)

// serializableTx elevates the reservation transactions so two concurrent
// bookings cannot both pass the conflict check (the classic check-then-act
// race). MySQL serializes them; one side fails and may be resubmitted.
var serializableTx = &sql.TxOptions{Isolation: sql.LevelSerializable}

// ReservationService orchestrates the reservation lifecycle: validation,
// conflict checking, the paired room-status transitions, and post-commit
// notification fan-out.
type ReservationService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
	Notifier     *NotificationService
}

func NewReservationService(db *gorm.DB, availability *AvailabilityService, notifier *NotificationService) *ReservationService {
	return &ReservationService{DB: db, Availability: availability, Notifier: notifier}
}

// ReservationParams is the validated write shape shared by create and update.
type ReservationParams struct {
	UserID   uint
	RoomID   uint
	CheckIn  time.Time
	CheckOut time.Time
	Status   models.ReservationStatus
}

func (p ReservationParams) fieldErrors() map[string]string {
	fields := map[string]string{}
	if p.UserID == 0 {
		fields["userId"] = "userId is required"
	}
	if p.RoomID == 0 {
		fields["roomId"] = "roomId is required"
	}
	if p.CheckIn.IsZero() {
		fields["checkIn"] = "checkIn is required"
	}
	if p.CheckOut.IsZero() {
		fields["checkOut"] = "checkOut is required"
	}
	if !p.CheckIn.IsZero() && !p.CheckOut.IsZero() && !p.CheckOut.After(p.CheckIn) {
		fields["checkOut"] = "check-out date must be after check-in date"
	}
	if p.Status != "" && !p.Status.Valid() {
		fields["status"] = fmt.Sprintf("invalid status %q", p.Status)
	}
	return fields
}

// checkUserAndRoom verifies both foreign keys and that the room is bookable.
func (s *ReservationService) checkUserAndRoom(p ReservationParams) (*models.Room, error) {
	var user models.User
	if err := s.DB.First(&user, p.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fieldError("userId", fmt.Sprintf("user with ID %d not found", p.UserID))
		}
		return nil, fmt.Errorf("failed to load user %d: %w", p.UserID, err)
	}

	var room models.Room
	if err := s.DB.First(&room, p.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fieldError("roomId", fmt.Sprintf("room with ID %d not found", p.RoomID))
		}
		return nil, fmt.Errorf("failed to load room %d: %w", p.RoomID, err)
	}

	if room.Status == models.RoomMaintenance || room.Status == models.RoomCleaning {
		return nil, fieldError("roomId", fmt.Sprintf("room is currently under %s", strings.ToLower(string(room.Status))))
	}
	return &room, nil
}

// Create persists a new reservation. On conflict it returns a *ConflictError
// carrying the blocking reservations. When the initial status already
// occupies the room, the room flips to OCCUPIED in the same transaction.
func (s *ReservationService) Create(p ReservationParams) (*models.Reservation, error) {
	if p.Status == "" {
		p.Status = models.ReservationPending
	}
	if fields := p.fieldErrors(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	if _, err := s.checkUserAndRoom(p); err != nil {
		return nil, err
	}

	reservation := models.Reservation{
		UserID:   p.UserID,
		RoomID:   p.RoomID,
		CheckIn:  p.CheckIn,
		CheckOut: p.CheckOut,
		Status:   p.Status,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		conflicts, err := findConflicts(tx, p.RoomID, p.CheckIn, p.CheckOut, 0)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &ConflictError{Conflicts: conflicts}
		}

		if err := tx.Create(&reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}

		if reservation.Status.OccupiesRoom() {
			if err := occupyRoom(tx, p.RoomID); err != nil {
				return err
			}
		}
		return nil
	}, serializableTx)
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("User").Preload("Room").First(&reservation, reservation.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload reservation: %w", err)
	}

	if s.Notifier != nil {
		if reservation.Status.OccupiesRoom() {
			s.Notifier.NotifyBookingConfirmed(reservation.UserID, reservation.ID, reservation.Room.Number, reservation.CheckIn)
		} else {
			s.Notifier.NotifyNewBooking(reservation.UserID, reservation.ID, reservation.Room.Number, reservation.CheckIn, reservation.CheckOut)
		}
	}
	return &reservation, nil
}

// Update rewrites a reservation and reconciles room statuses: the new room is
// occupied when the status demands it, a vacated room reverts to AVAILABLE
// when no other active reservation holds it, and a downgrade from CHECKED_IN
// only releases the room after counting the other checked-in stays.
func (s *ReservationService) Update(id uint, p ReservationParams) (*models.Reservation, error) {
	var current models.Reservation
	if err := s.DB.First(&current, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}

	if p.Status == "" {
		p.Status = current.Status
	}
	if fields := p.fieldErrors(); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	if _, err := s.checkUserAndRoom(p); err != nil {
		return nil, err
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		conflicts, err := findConflicts(tx, p.RoomID, p.CheckIn, p.CheckOut, id)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &ConflictError{Conflicts: conflicts}
		}

		updates := map[string]interface{}{
			"user_id":   p.UserID,
			"room_id":   p.RoomID,
			"check_in":  p.CheckIn,
			"check_out": p.CheckOut,
			"status":    p.Status,
		}
		if err := tx.Model(&models.Reservation{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update reservation %d: %w", id, err)
		}

		if p.Status.OccupiesRoom() {
			if err := occupyRoom(tx, p.RoomID); err != nil {
				return err
			}
		} else if current.Status == models.ReservationCheckedIn {
			// Downgrade from CHECKED_IN: release the room only when no other
			// checked-in reservation still holds it.
			var others int64
			err := tx.Model(&models.Reservation{}).
				Where("room_id = ? AND status = ? AND id <> ?", p.RoomID, models.ReservationCheckedIn, id).
				Count(&others).Error
			if err != nil {
				return fmt.Errorf("failed to count checked-in reservations: %w", err)
			}
			if others == 0 {
				if err := releaseRoom(tx, p.RoomID); err != nil {
					return err
				}
			}
		}

		if current.RoomID != p.RoomID {
			if err := releaseRoomIfIdle(tx, current.RoomID, id); err != nil {
				return err
			}
		}
		return nil
	}, serializableTx)
	if txErr != nil {
		return nil, txErr
	}

	var updated models.Reservation
	if err := s.DB.Preload("User").Preload("Room").First(&updated, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload reservation: %w", err)
	}

	if s.Notifier != nil && updated.Status == models.ReservationConfirmed && current.Status != models.ReservationConfirmed {
		s.Notifier.NotifyBookingConfirmed(updated.UserID, updated.ID, updated.Room.Number, updated.CheckIn)
	}
	return &updated, nil
}

// Delete hard-deletes a reservation and recomputes the room status in the
// same transaction, so a deleted booking cannot leave a phantom OCCUPIED room.
func (s *ReservationService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load reservation %d: %w", id, err)
		}

		if err := tx.Delete(&models.Reservation{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete reservation %d: %w", id, err)
		}

		return releaseRoomIfIdle(tx, reservation.RoomID, id)
	}, serializableTx)
}

// GetAll returns every reservation with its user and room, newest first.
func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.
		Preload("User").
		Preload("Room").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

// ListForUser returns a guest's own reservations, newest first.
func (s *ReservationService) ListForUser(userID uint) ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.
		Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.Preload("User").Preload("Room").First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reservation %d: %w", id, err)
	}
	return &reservation, nil
}

// ReservationOptions feeds the admin booking form: active users plus rooms
// free for the requested range.
type ReservationOptions struct {
	Users    []models.User `json:"users"`
	Rooms    []models.Room `json:"rooms"`
	CheckIn  time.Time     `json:"checkIn"`
	CheckOut time.Time     `json:"checkOut"`
}

func (s *ReservationService) Options(checkIn, checkOut time.Time) (*ReservationOptions, error) {
	if !checkOut.After(checkIn) {
		return nil, fieldError("checkOut", "check-out date must be after check-in date")
	}

	var users []models.User
	if err := s.DB.Where("is_active = ?", true).Order("name ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	rooms, err := s.Availability.AvailableRooms(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return &ReservationOptions{Users: users, Rooms: rooms, CheckIn: checkIn, CheckOut: checkOut}, nil
}

func occupyRoom(tx *gorm.DB, roomID uint) error {
	err := tx.Model(&models.Room{}).Where("id = ?", roomID).
		Updates(map[string]interface{}{"status": models.RoomOccupied, "available": false}).Error
	if err != nil {
		return fmt.Errorf("failed to mark room %d occupied: %w", roomID, err)
	}
	return nil
}

func releaseRoom(tx *gorm.DB, roomID uint) error {
	err := tx.Model(&models.Room{}).Where("id = ?", roomID).
		Updates(map[string]interface{}{"status": models.RoomAvailable, "available": true}).Error
	if err != nil {
		return fmt.Errorf("failed to release room %d: %w", roomID, err)
	}
	return nil
}

// releaseRoomIfIdle reverts an OCCUPIED room to AVAILABLE when no occupying
// reservation other than excludeID remains on it. Rooms under MAINTENANCE or
// CLEANING are left alone.
func releaseRoomIfIdle(tx *gorm.DB, roomID uint, excludeID uint) error {
	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load room %d: %w", roomID, err)
	}
	if room.Status != models.RoomOccupied {
		return nil
	}

	var remaining int64
	err := tx.Model(&models.Reservation{}).
		Where("room_id = ? AND status IN ? AND id <> ?", roomID, models.OccupyingStatuses, excludeID).
		Count(&remaining).Error
	if err != nil {
		return fmt.Errorf("failed to count reservations on room %d: %w", roomID, err)
	}
	if remaining == 0 {
		return releaseRoom(tx, roomID)
	}
	return nil
}
