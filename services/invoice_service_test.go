package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Edmond40/hotel-management-system/models"
)

func TestInvoiceCreateDefaultsToUnpaid(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db, nil)
	guest := createTestUser(t, db, "guest", models.RoleGuest)

	invoice, err := svc.Create(guest.ID, 120.50, "")
	require.NoError(t, err)
	require.Equal(t, models.InvoiceUnpaid, invoice.Status)

	_, err = svc.Create(0, 10, "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "userId")

	_, err = svc.Create(9999, 10, "")
	require.ErrorAs(t, err, &verr)
}

func TestInvoiceStatusChangeNotifiesOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db, NewNotificationService(db, nil))
	guest := createTestUser(t, db, "guest", models.RoleGuest)

	invoice, err := svc.Create(guest.ID, 80, models.InvoiceUnpaid)
	require.NoError(t, err)

	paid := models.InvoicePaid
	updated, err := svc.Update(invoice.ID, InvoiceParams{Status: &paid})
	require.NoError(t, err)
	require.Equal(t, models.InvoicePaid, updated.Status)

	var notifs []models.Notification
	require.NoError(t, db.Where("type = ?", models.NotifPaymentUpdate).Find(&notifs).Error)
	require.Len(t, notifs, 1)
	require.Equal(t, "Payment Received!", notifs[0].Title)

	// same status again is not a transition
	_, err = svc.Update(invoice.ID, InvoiceParams{Status: &paid})
	require.NoError(t, err)
	require.NoError(t, db.Where("type = ?", models.NotifPaymentUpdate).Find(&notifs).Error)
	require.Len(t, notifs, 1)
}

func TestInvoiceListForUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db, nil)
	guest := createTestUser(t, db, "guest", models.RoleGuest)
	other := createTestUser(t, db, "other", models.RoleGuest)

	_, err := svc.Create(guest.ID, 10, models.InvoiceUnpaid)
	require.NoError(t, err)
	_, err = svc.Create(other.ID, 20, models.InvoiceUnpaid)
	require.NoError(t, err)

	mine, err := svc.ListForUser(guest.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, float64(10), mine[0].Amount)
}

func TestInvoiceDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewInvoiceService(db, nil)
	guest := createTestUser(t, db, "guest", models.RoleGuest)

	invoice, err := svc.Create(guest.ID, 10, models.InvoiceUnpaid)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(invoice.ID))
	require.True(t, errors.Is(svc.Delete(invoice.ID), ErrNotFound))
}
