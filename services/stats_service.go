package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/Edmond40/hotel-management-system/models"
)

// DashboardStats is the admin dashboard aggregate. Recomputed fully on every
// call; data volumes are hotel-scale.
type DashboardStats struct {
	TotalRooms          int        `json:"totalRooms"`
	AvailableRooms      int        `json:"availableRooms"`
	OccupiedRooms       int        `json:"occupiedRooms"`
	MaintenanceRooms    int        `json:"maintenanceRooms"`
	CleaningRooms       int        `json:"cleaningRooms"`
	OccupancyPercent    int        `json:"occupancyPercent"`
	ActiveReservations  int        `json:"activeReservations"`
	ConfirmedCount      int        `json:"confirmedCount"`
	PendingCount        int        `json:"pendingCount"`
	CheckedInCount      int        `json:"checkedInCount"`
	PendingInvoiceCount int        `json:"pendingInvoiceCount"`
	TotalPendingAmount  float64    `json:"totalPendingAmount"`
	MenuItemCount       int        `json:"menuItemCount"`
	MonthlyRevenue      [6]float64 `json:"monthlyRevenue"`
}

// StatsService derives dashboard views from rooms, reservations, invoices and
// menu items. Now is injectable for tests.
type StatsService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db, Now: time.Now}
}

// ComputeStats tallies room statuses, active reservations, unpaid invoices
// and the 6-month revenue window. Monthly revenue is an approximation: each
// reservation contributes its room's nightly price once, in its check-in
// month, rather than true invoiced amounts.
func (s *StatsService) ComputeStats() (*DashboardStats, error) {
	now := s.Now()
	stats := &DashboardStats{}

	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	stats.TotalRooms = len(rooms)
	for _, r := range rooms {
		switch r.Status {
		case models.RoomAvailable:
			stats.AvailableRooms++
		case models.RoomOccupied:
			stats.OccupiedRooms++
		case models.RoomMaintenance:
			stats.MaintenanceRooms++
		case models.RoomCleaning:
			stats.CleaningRooms++
		}
	}
	if stats.TotalRooms > 0 {
		stats.OccupancyPercent = int(math.Round(float64(stats.OccupiedRooms) / float64(stats.TotalRooms) * 100))
	}

	var active []models.Reservation
	err := s.DB.
		Where("status IN ?", []models.ReservationStatus{
			models.ReservationPending, models.ReservationConfirmed, models.ReservationCheckedIn,
		}).
		Where("check_in <= ? AND check_out >= ?", now, now).
		Find(&active).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load active reservations: %w", err)
	}
	stats.ActiveReservations = len(active)
	for _, r := range active {
		switch r.Status {
		case models.ReservationConfirmed:
			stats.ConfirmedCount++
		case models.ReservationPending:
			stats.PendingCount++
		case models.ReservationCheckedIn:
			stats.CheckedInCount++
		}
	}

	var unpaid []models.Invoice
	if err := s.DB.Where("status = ?", models.InvoiceUnpaid).Find(&unpaid).Error; err != nil {
		return nil, fmt.Errorf("failed to load unpaid invoices: %w", err)
	}
	stats.PendingInvoiceCount = len(unpaid)
	var pendingSum float64
	for _, inv := range unpaid {
		pendingSum += inv.Amount
	}
	stats.TotalPendingAmount = math.Round(pendingSum*100) / 100

	var menuCount int64
	if err := s.DB.Model(&models.MenuItem{}).Count(&menuCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count menu items: %w", err)
	}
	stats.MenuItemCount = int(menuCount)

	var recent []models.Reservation
	err = s.DB.Preload("Room").
		Where("check_in >= ?", now.AddDate(0, -6, 0)).
		Find(&recent).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent reservations: %w", err)
	}
	for _, r := range recent {
		monthDiff := (now.Year()-r.CheckIn.Year())*12 + int(now.Month()) - int(r.CheckIn.Month())
		if monthDiff >= 0 && monthDiff < 6 {
			stats.MonthlyRevenue[5-monthDiff] += r.Room.Price
		}
	}

	return stats, nil
}

// UpcomingStay summarizes the guest's next confirmed reservation.
type UpcomingStay struct {
	Room         models.Room `json:"room"`
	CheckInDate  string      `json:"checkInDate"`
	CheckOutDate string      `json:"checkOutDate"`
	Nights       int         `json:"nights"`
}

// GuestDashboardStats is the guest home view.
type GuestDashboardStats struct {
	UpcomingStay *UpcomingStay `json:"upcomingStay"`
	MealRequests int64         `json:"mealRequests"`
	TotalSpent   float64       `json:"totalSpent"`
}

// GuestDashboard returns the guest's next upcoming confirmed stay, their
// meal-request count for the current calendar week, and invoice total for the
// current calendar month.
func (s *StatsService) GuestDashboard(userID uint) (*GuestDashboardStats, error) {
	now := s.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := &GuestDashboardStats{}

	var next models.Reservation
	err := s.DB.Preload("Room").
		Where("user_id = ? AND status = ? AND check_out >= ?", userID, models.ReservationConfirmed, today).
		Order("check_in ASC").
		First(&next).Error
	switch {
	case err == nil:
		nights := int(math.Ceil(next.CheckOut.Sub(next.CheckIn).Hours() / 24))
		out.UpcomingStay = &UpcomingStay{
			Room:         next.Room,
			CheckInDate:  next.CheckIn.Format("Jan 2"),
			CheckOutDate: next.CheckOut.Format("Jan 2"),
			Nights:       nights,
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no upcoming stay
	default:
		return nil, fmt.Errorf("failed to load upcoming stay: %w", err)
	}

	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)
	err = s.DB.Model(&models.Request{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, weekStart, weekEnd).
		Count(&out.MealRequests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count meal requests: %w", err)
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	var invoices []models.Invoice
	err = s.DB.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, monthStart, monthEnd).
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	for _, inv := range invoices {
		out.TotalSpent += inv.Amount
	}

	return out, nil
}
