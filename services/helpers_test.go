package services

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Edmond40/hotel-management-system/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:hotel_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Reservation{},
		&models.Invoice{},
		&models.MenuItem{},
		&models.Request{},
		&models.Notification{},
		&models.HotelSetting{},
	); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return user
}

func createTestRoom(t *testing.T, db *gorm.DB, number string, status models.RoomStatus) models.Room {
	t.Helper()
	room := models.Room{
		Number:    number,
		Type:      "Standard",
		Price:     100,
		Capacity:  2,
		Status:    status,
		Available: status == models.RoomAvailable,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room %s: %v", number, err)
	}
	return room
}

func createTestReservation(t *testing.T, db *gorm.DB, userID, roomID uint, checkIn, checkOut time.Time, status models.ReservationStatus) models.Reservation {
	t.Helper()
	r := models.Reservation{
		UserID:   userID,
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   status,
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("failed to create reservation: %v", err)
	}
	return r
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
