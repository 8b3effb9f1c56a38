package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Edmond40/hotel-management-system/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) validate(room *models.Room) *ValidationError {
	fields := map[string]string{}
	room.Number = strings.TrimSpace(room.Number)
	if room.Number == "" {
		fields["number"] = "room number is required"
	}
	if room.Price < 0 {
		fields["price"] = "price must not be negative"
	}
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	if !room.Status.Valid() {
		fields["status"] = fmt.Sprintf("invalid status %q", room.Status)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *RoomService) Create(room *models.Room) error {
	if verr := s.validate(room); verr != nil {
		return verr
	}
	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateErr(err) {
			return fieldError("number", fmt.Sprintf("room number %q already exists", room.Number))
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (s *RoomService) Update(id uint, room *models.Room) (*models.Room, error) {
	var current models.Room
	if err := s.DB.First(&current, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}

	if verr := s.validate(room); verr != nil {
		return nil, verr
	}

	updates := map[string]interface{}{
		"number":      room.Number,
		"type":        room.Type,
		"price":       room.Price,
		"capacity":    room.Capacity,
		"floor":       room.Floor,
		"description": room.Description,
		"amenities":   room.Amenities,
		"status":      room.Status,
		"available":   room.Available,
	}
	if err := s.DB.Model(&current).Updates(updates).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, fieldError("number", fmt.Sprintf("room number %q already exists", room.Number))
		}
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}

	if err := s.DB.First(&current, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload room: %w", err)
	}
	return &current, nil
}

func (s *RoomService) Delete(id uint) error {
	res := s.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
