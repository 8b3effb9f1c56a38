package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Edmond40/hotel-management-system/models"
)

func TestComputeStatsEmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)

	stats, err := svc.ComputeStats()
	require.NoError(t, err)
	require.Equal(t, 0, stats.TotalRooms)
	require.Equal(t, 0, stats.OccupancyPercent)
	require.Equal(t, float64(0), stats.TotalPendingAmount)
	require.Equal(t, [6]float64{}, stats.MonthlyRevenue)
}

func TestComputeStatsOccupancyRounding(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)

	createTestRoom(t, db, "101", models.RoomOccupied)
	createTestRoom(t, db, "102", models.RoomAvailable)
	createTestRoom(t, db, "103", models.RoomAvailable)

	stats, err := svc.ComputeStats()
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalRooms)
	require.Equal(t, 1, stats.OccupiedRooms)
	require.Equal(t, 2, stats.AvailableRooms)
	require.Equal(t, 33, stats.OccupancyPercent)
}

func TestComputeStatsActiveReservations(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)
	now := date(2024, time.June, 15)
	svc.Now = func() time.Time { return now }

	guest := createTestUser(t, db, "guest", models.RoleGuest)
	room := createTestRoom(t, db, "101", models.RoomAvailable)

	// spans today
	createTestReservation(t, db, guest.ID, room.ID,
		date(2024, time.June, 14), date(2024, time.June, 16), models.ReservationConfirmed)
	// spans today but cancelled
	createTestReservation(t, db, guest.ID, room.ID,
		date(2024, time.June, 14), date(2024, time.June, 16), models.ReservationCancelled)
	// entirely in the past
	createTestReservation(t, db, guest.ID, room.ID,
		date(2024, time.June, 1), date(2024, time.June, 3), models.ReservationConfirmed)
	// pending, spans today
	createTestReservation(t, db, guest.ID, room.ID,
		date(2024, time.June, 15), date(2024, time.June, 17), models.ReservationPending)

	stats, err := svc.ComputeStats()
	require.NoError(t, err)
	require.Equal(t, 2, stats.ActiveReservations)
	require.Equal(t, 1, stats.ConfirmedCount)
	require.Equal(t, 1, stats.PendingCount)
	require.Equal(t, 0, stats.CheckedInCount)
}

func TestComputeStatsPendingAmountIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)
	guest := createTestUser(t, db, "guest", models.RoleGuest)

	require.NoError(t, db.Create(&models.Invoice{UserID: guest.ID, Amount: 10.555, Status: models.InvoiceUnpaid}).Error)
	require.NoError(t, db.Create(&models.Invoice{UserID: guest.ID, Amount: 20, Status: models.InvoiceUnpaid}).Error)
	require.NoError(t, db.Create(&models.Invoice{UserID: guest.ID, Amount: 99, Status: models.InvoicePaid}).Error)

	first, err := svc.ComputeStats()
	require.NoError(t, err)
	second, err := svc.ComputeStats()
	require.NoError(t, err)

	require.Equal(t, 2, first.PendingInvoiceCount)
	require.Equal(t, 30.56, first.TotalPendingAmount)
	require.Equal(t, first.TotalPendingAmount, second.TotalPendingAmount)
}

func TestComputeStatsMonthlyRevenueBuckets(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)
	now := date(2024, time.June, 15)
	svc.Now = func() time.Time { return now }

	guest := createTestUser(t, db, "guest", models.RoleGuest)
	room := createTestRoom(t, db, "101", models.RoomAvailable) // price 100

	// this month -> last bucket
	createTestReservation(t, db, guest.ID, room.ID,
		date(2024, time.June, 1), date(2024, time.June, 3), models.ReservationConfirmed)
	// two months ago -> index 3
	createTestReservation(t, db, guest.ID, room.ID,
		date(2024, time.April, 10), date(2024, time.April, 12), models.ReservationConfirmed)

	stats, err := svc.ComputeStats()
	require.NoError(t, err)
	require.Equal(t, float64(100), stats.MonthlyRevenue[5])
	require.Equal(t, float64(100), stats.MonthlyRevenue[3])
	require.Equal(t, float64(0), stats.MonthlyRevenue[0])
}

func TestGuestDashboard(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)
	now := date(2024, time.June, 12) // a Wednesday
	svc.Now = func() time.Time { return now }

	guest := createTestUser(t, db, "guest", models.RoleGuest)
	other := createTestUser(t, db, "other", models.RoleGuest)
	room := createTestRoom(t, db, "101", models.RoomAvailable)

	// two upcoming confirmed stays; the earlier one wins
	createTestReservation(t, db, guest.ID, room.ID,
		date(2024, time.July, 1), date(2024, time.July, 4), models.ReservationConfirmed)
	createTestReservation(t, db, guest.ID, room.ID,
		date(2024, time.June, 20), date(2024, time.June, 23), models.ReservationConfirmed)
	// another guest's stay is never surfaced
	createTestReservation(t, db, other.ID, room.ID,
		date(2024, time.June, 18), date(2024, time.June, 19), models.ReservationConfirmed)

	item := models.MenuItem{Name: "Toast", Category: "Breakfast", Price: 5, Available: true}
	require.NoError(t, db.Create(&item).Error)

	// CreatedAt pinned inside / outside the current week and month
	thisWeek := date(2024, time.June, 11)
	lastWeek := date(2024, time.June, 3)
	require.NoError(t, db.Create(&models.Request{UserID: guest.ID, MenuItemID: &item.ID, Quantity: 1,
		Status: models.RequestPending, CreatedAt: thisWeek}).Error)
	require.NoError(t, db.Create(&models.Request{UserID: guest.ID, MenuItemID: &item.ID, Quantity: 1,
		Status: models.RequestPending, CreatedAt: lastWeek}).Error)
	require.NoError(t, db.Create(&models.Request{UserID: other.ID, MenuItemID: &item.ID, Quantity: 1,
		Status: models.RequestPending, CreatedAt: thisWeek}).Error)

	require.NoError(t, db.Create(&models.Invoice{UserID: guest.ID, Amount: 120, Status: models.InvoicePaid, CreatedAt: thisWeek}).Error)
	require.NoError(t, db.Create(&models.Invoice{UserID: guest.ID, Amount: 30, Status: models.InvoiceUnpaid, CreatedAt: thisWeek}).Error)
	require.NoError(t, db.Create(&models.Invoice{UserID: guest.ID, Amount: 999, Status: models.InvoicePaid, CreatedAt: date(2024, time.May, 20)}).Error)

	dash, err := svc.GuestDashboard(guest.ID)
	require.NoError(t, err)
	require.NotNil(t, dash.UpcomingStay)
	require.Equal(t, "Jun 20", dash.UpcomingStay.CheckInDate)
	require.Equal(t, 3, dash.UpcomingStay.Nights)
	require.Equal(t, int64(1), dash.MealRequests)
	require.Equal(t, float64(150), dash.TotalSpent)
}

func TestGuestDashboardNoUpcomingStay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)
	guest := createTestUser(t, db, "guest", models.RoleGuest)

	dash, err := svc.GuestDashboard(guest.ID)
	require.NoError(t, err)
	require.Nil(t, dash.UpcomingStay)
	require.Equal(t, int64(0), dash.MealRequests)
	require.Equal(t, float64(0), dash.TotalSpent)
}
