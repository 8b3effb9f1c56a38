package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Edmond40/hotel-management-system/models"
	"github.com/Edmond40/hotel-management-system/realtime"
)

// NotificationService writes notification rows on state transitions and
// manages per-user inboxes. The Notify* methods are fire-and-forget: failures
// are logged and swallowed so a missed notification can never fail or roll
// back the business operation that triggered it. There is no retry and no
// idempotency key; a resubmitted mutation may notify twice.
type NotificationService struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewNotificationService(db *gorm.DB, hub *realtime.Hub) *NotificationService {
	return &NotificationService{DB: db, Hub: hub}
}

func (s *NotificationService) create(userID uint, title, message string, typ models.NotificationType, relatedID *uint) {
	n := models.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		RelatedID: relatedID,
	}
	if err := s.DB.Create(&n).Error; err != nil {
		log.Error().Err(err).Str("type", string(typ)).Uint("user_id", userID).
			Msg("failed to create notification")
		return
	}
	s.push(n)
}

func (s *NotificationService) push(n models.Notification) {
	if s.Hub != nil {
		s.Hub.Push(n.UserID, n)
	}
}

// fanOut batch-inserts one notification per recipient.
func (s *NotificationService) fanOut(recipients []models.User, title, message string, typ models.NotificationType, relatedID *uint) {
	if len(recipients) == 0 {
		return
	}

	batch := make([]models.Notification, 0, len(recipients))
	for _, u := range recipients {
		batch = append(batch, models.Notification{
			UserID:    u.ID,
			Title:     title,
			Message:   message,
			Type:      typ,
			RelatedID: relatedID,
		})
	}
	if err := s.DB.Create(&batch).Error; err != nil {
		log.Error().Err(err).Str("type", string(typ)).Int("recipients", len(recipients)).
			Msg("failed to fan out notifications")
		return
	}
	for _, n := range batch {
		s.push(n)
	}
	log.Info().Str("type", string(typ)).Int("recipients", len(recipients)).
		Msg("notifications fanned out")
}

func (s *NotificationService) usersWithRole(role models.Role) []models.User {
	var users []models.User
	if err := s.DB.Where("role = ?", role).Find(&users).Error; err != nil {
		log.Error().Err(err).Str("role", string(role)).Msg("failed to load notification recipients")
		return nil
	}
	return users
}

// NotifyBookingConfirmed tells the guest their reservation is confirmed.
func (s *NotificationService) NotifyBookingConfirmed(userID, reservationID uint, roomNumber string, checkIn time.Time) {
	s.create(userID,
		"Booking Confirmed!",
		fmt.Sprintf("Your booking for Room %s starting %s has been confirmed.", roomNumber, checkIn.Format("Jan 2, 2006")),
		models.NotifBookingConfirmed,
		&reservationID,
	)
}

// NotifyNewBooking tells the guest their reservation was created and awaits
// confirmation.
func (s *NotificationService) NotifyNewBooking(userID, reservationID uint, roomNumber string, checkIn, checkOut time.Time) {
	s.create(userID,
		"Booking Created!",
		fmt.Sprintf("Your booking for Room %s from %s to %s has been created and is pending confirmation.",
			roomNumber, checkIn.Format("Jan 2, 2006"), checkOut.Format("Jan 2, 2006")),
		models.NotifBookingConfirmed,
		&reservationID,
	)
}

// NotifyMenuUpdate fans a menu change out to every guest.
func (s *NotificationService) NotifyMenuUpdate(menuItemName string, isNewItem bool) {
	title := "Menu Item Updated!"
	message := fmt.Sprintf("%q has been updated. Check out the changes!", menuItemName)
	if isNewItem {
		title = "New Menu Item Added!"
		message = fmt.Sprintf("New item %q has been added to our menu. Check it out!", menuItemName)
	}
	s.fanOut(s.usersWithRole(models.RoleGuest), title, message, models.NotifMenuUpdate, nil)
}

// NotifyRequestStatusChange tells the guest about a meal-request transition.
// Only Confirmed, Completed and Cancelled produce a notification.
func (s *NotificationService) NotifyRequestStatusChange(userID, requestID uint, status models.RequestStatus, menuItemName string) {
	var title, message string
	switch status {
	case models.RequestConfirmed:
		title = "Request Confirmed!"
		message = fmt.Sprintf("Your request for %q has been confirmed and is being prepared.", menuItemName)
	case models.RequestCompleted:
		title = "Request Completed!"
		message = fmt.Sprintf("Your request for %q has been completed and is ready!", menuItemName)
	case models.RequestCancelled:
		title = "Request Cancelled"
		message = fmt.Sprintf("Your request for %q has been cancelled. Please contact us if you have questions.", menuItemName)
	default:
		return
	}
	s.create(userID, title, message, models.NotifRequestStatus, &requestID)
}

// NotifyPaymentUpdate tells the invoice owner about a payment status change.
func (s *NotificationService) NotifyPaymentUpdate(userID, invoiceID uint, amount float64, status models.InvoiceStatus) {
	var title, message string
	switch status {
	case models.InvoicePaid:
		title = "Payment Received!"
		message = fmt.Sprintf("Your payment of $%.2f has been successfully processed.", amount)
	case models.InvoiceUnpaid:
		title = "Payment Due"
		message = fmt.Sprintf("You have an outstanding payment of $%.2f. Please settle your bill.", amount)
	default:
		return
	}
	s.create(userID, title, message, models.NotifPaymentUpdate, &invoiceID)
}

// NotifyAdminNewOrder fans a new guest food order out to every admin.
func (s *NotificationService) NotifyAdminNewOrder(guestName, menuItemName string, quantity int, requestID uint) {
	s.fanOut(s.usersWithRole(models.RoleAdmin),
		"New Food Order!",
		fmt.Sprintf("%s has ordered %dx %q. Please review and confirm the request.", guestName, quantity, menuItemName),
		models.NotifNewOrder,
		&requestID,
	)
}

// ---- inbox management (these do report errors; they are user actions, not
// fan-out side effects) ----

func (s *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	var list []models.Notification
	err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return list, nil
}

// MarkRead marks one notification read. Scoped by owner so users cannot touch
// each other's inboxes.
func (s *NotificationService) MarkRead(id, userID uint) error {
	res := s.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	err := s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (s *NotificationService) Delete(id, userID uint) error {
	res := s.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Notification{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *NotificationService) DeleteAll(userID uint) error {
	if err := s.DB.Where("user_id = ?", userID).Delete(&models.Notification{}).Error; err != nil {
		return fmt.Errorf("failed to delete notifications: %w", err)
	}
	return nil
}
