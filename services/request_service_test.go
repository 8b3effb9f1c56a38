package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Edmond40/hotel-management-system/models"
)

type gormFixture struct {
	db    *gorm.DB
	guest models.User
	admin models.User
	item  models.MenuItem
}

func setupRequestService(t *testing.T) (*RequestService, *gormFixture) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewRequestService(db, NewNotificationService(db, nil))
	fx := &gormFixture{db: db}
	fx.guest = createTestUser(t, db, "guest", models.RoleGuest)
	fx.admin = createTestUser(t, db, "admin", models.RoleAdmin)
	fx.item = models.MenuItem{Name: "Club Sandwich", Category: "Lunch", Price: 9, Available: true}
	require.NoError(t, db.Create(&fx.item).Error)
	return svc, fx
}

func TestCreateRequestNotifiesAdmins(t *testing.T) {
	svc, fx := setupRequestService(t)

	req, err := svc.Create(fx.guest, fx.item.ID, 0, "no onions")
	require.NoError(t, err)
	require.Equal(t, 1, req.Quantity) // zero quantity normalized
	require.Equal(t, models.RequestPending, req.Status)
	require.NotNil(t, req.MenuItem)

	var notifs []models.Notification
	require.NoError(t, fx.db.Where("user_id = ?", fx.admin.ID).Find(&notifs).Error)
	require.Len(t, notifs, 1)
	require.Equal(t, models.NotifNewOrder, notifs[0].Type)
}

func TestCreateRequestUnavailableItem(t *testing.T) {
	svc, fx := setupRequestService(t)
	require.NoError(t, fx.db.Model(&fx.item).Update("available", false).Error)

	_, err := svc.Create(fx.guest, fx.item.ID, 1, "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "menuItemId")

	_, err = svc.Create(fx.guest, 9999, 1, "")
	require.ErrorAs(t, err, &verr)
}

func TestUpdateRequestStatusNotifiesOwner(t *testing.T) {
	svc, fx := setupRequestService(t)

	req, err := svc.Create(fx.guest, fx.item.ID, 2, "")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(req.ID, models.RequestConfirmed)
	require.NoError(t, err)
	require.Equal(t, models.RequestConfirmed, updated.Status)

	var notifs []models.Notification
	require.NoError(t, fx.db.
		Where("user_id = ? AND type = ?", fx.guest.ID, models.NotifRequestStatus).
		Find(&notifs).Error)
	require.Len(t, notifs, 1)

	_, err = svc.UpdateStatus(req.ID, "Bogus")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.UpdateStatus(9999, models.RequestConfirmed)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestListRequestsForUser(t *testing.T) {
	svc, fx := setupRequestService(t)

	_, err := svc.Create(fx.guest, fx.item.ID, 1, "")
	require.NoError(t, err)
	_, err = svc.Create(fx.admin, fx.item.ID, 1, "")
	require.NoError(t, err)

	mine, err := svc.ListForUser(fx.guest.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	all, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
}
