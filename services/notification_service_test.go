package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Edmond40/hotel-management-system/models"
)

func TestNotifyMenuUpdateFansOutToGuestsOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, nil)

	guest1 := createTestUser(t, db, "guest1", models.RoleGuest)
	guest2 := createTestUser(t, db, "guest2", models.RoleGuest)
	admin := createTestUser(t, db, "admin", models.RoleAdmin)

	svc.NotifyMenuUpdate("Pancakes", true)

	var notifs []models.Notification
	require.NoError(t, db.Find(&notifs).Error)
	require.Len(t, notifs, 2)

	recipients := map[uint]bool{}
	for _, n := range notifs {
		recipients[n.UserID] = true
		require.Equal(t, models.NotifMenuUpdate, n.Type)
		require.Equal(t, "New Menu Item Added!", n.Title)
	}
	require.True(t, recipients[guest1.ID])
	require.True(t, recipients[guest2.ID])
	require.False(t, recipients[admin.ID])
}

func TestNotifyAdminNewOrderFansOutToAdminsOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, nil)

	createTestUser(t, db, "guest", models.RoleGuest)
	admin := createTestUser(t, db, "admin", models.RoleAdmin)

	svc.NotifyAdminNewOrder("Alice", "Club Sandwich", 2, 7)

	var notifs []models.Notification
	require.NoError(t, db.Find(&notifs).Error)
	require.Len(t, notifs, 1)
	require.Equal(t, admin.ID, notifs[0].UserID)
	require.Equal(t, models.NotifNewOrder, notifs[0].Type)
	require.Equal(t, uint(7), *notifs[0].RelatedID)
}

func TestNotifyRequestStatusChangeSkipsPending(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, nil)
	guest := createTestUser(t, db, "guest", models.RoleGuest)

	svc.NotifyRequestStatusChange(guest.ID, 1, models.RequestPending, "Toast")

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	require.Equal(t, int64(0), count)

	svc.NotifyRequestStatusChange(guest.ID, 1, models.RequestCompleted, "Toast")
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestNotifyBookingConfirmedMessage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, nil)
	guest := createTestUser(t, db, "guest", models.RoleGuest)

	svc.NotifyBookingConfirmed(guest.ID, 3, "201", date(2024, time.March, 5))

	var n models.Notification
	require.NoError(t, db.First(&n).Error)
	require.Equal(t, "Booking Confirmed!", n.Title)
	require.Equal(t, "Your booking for Room 201 starting Mar 5, 2024 has been confirmed.", n.Message)
}

func TestInboxScoping(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, nil)
	owner := createTestUser(t, db, "owner", models.RoleGuest)
	intruder := createTestUser(t, db, "intruder", models.RoleGuest)

	svc.NotifyBookingConfirmed(owner.ID, 1, "101", date(2024, time.March, 1))

	list, err := svc.ListForUser(owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.False(t, list[0].IsRead)

	// another user cannot touch it
	require.True(t, errors.Is(svc.MarkRead(list[0].ID, intruder.ID), ErrNotFound))
	require.True(t, errors.Is(svc.Delete(list[0].ID, intruder.ID), ErrNotFound))

	require.NoError(t, svc.MarkRead(list[0].ID, owner.ID))
	list, err = svc.ListForUser(owner.ID)
	require.NoError(t, err)
	require.True(t, list[0].IsRead)
}

func TestMarkAllReadAndDeleteAll(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, nil)
	guest := createTestUser(t, db, "guest", models.RoleGuest)
	other := createTestUser(t, db, "other", models.RoleGuest)

	svc.NotifyBookingConfirmed(guest.ID, 1, "101", date(2024, time.March, 1))
	svc.NotifyBookingConfirmed(guest.ID, 2, "102", date(2024, time.April, 1))
	svc.NotifyBookingConfirmed(other.ID, 3, "103", date(2024, time.May, 1))

	require.NoError(t, svc.MarkAllRead(guest.ID))
	list, err := svc.ListForUser(guest.ID)
	require.NoError(t, err)
	for _, n := range list {
		require.True(t, n.IsRead)
	}

	require.NoError(t, svc.DeleteAll(guest.ID))
	list, err = svc.ListForUser(guest.ID)
	require.NoError(t, err)
	require.Empty(t, list)

	// the other inbox is untouched
	list, err = svc.ListForUser(other.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
