package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Edmond40/hotel-management-system/models"
)

type InvoiceService struct {
	DB       *gorm.DB
	Notifier *NotificationService
}

func NewInvoiceService(db *gorm.DB, notifier *NotificationService) *InvoiceService {
	return &InvoiceService{DB: db, Notifier: notifier}
}

func (s *InvoiceService) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.DB.Preload("User").Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}
	return invoices, nil
}

func (s *InvoiceService) ListForUser(userID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}
	return invoices, nil
}

func (s *InvoiceService) Create(userID uint, amount float64, status models.InvoiceStatus) (*models.Invoice, error) {
	fields := map[string]string{}
	if userID == 0 {
		fields["userId"] = "userId is required"
	}
	if amount < 0 {
		fields["amount"] = "amount must not be negative"
	}
	if status == "" {
		status = models.InvoiceUnpaid
	}
	if !status.Valid() {
		fields["status"] = fmt.Sprintf("invalid status %q", status)
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fieldError("userId", fmt.Sprintf("user with ID %d not found", userID))
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}

	invoice := models.Invoice{UserID: userID, Amount: amount, Status: status}
	if err := s.DB.Create(&invoice).Error; err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &invoice, nil
}

// InvoiceParams uses pointers so a PUT can change a subset of fields.
type InvoiceParams struct {
	UserID *uint
	Amount *float64
	Status *models.InvoiceStatus
}

// Update rewrites the invoice; a status change fans a payment-update
// notification out to the owner.
func (s *InvoiceService) Update(id uint, p InvoiceParams) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.DB.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load invoice %d: %w", id, err)
	}
	previousStatus := invoice.Status

	updates := map[string]interface{}{}
	if p.UserID != nil {
		updates["user_id"] = *p.UserID
	}
	if p.Amount != nil {
		if *p.Amount < 0 {
			return nil, fieldError("amount", "amount must not be negative")
		}
		updates["amount"] = *p.Amount
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return nil, fieldError("status", fmt.Sprintf("invalid status %q", *p.Status))
		}
		updates["status"] = *p.Status
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&invoice).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update invoice %d: %w", id, err)
		}
	}
	if err := s.DB.Preload("User").First(&invoice, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload invoice: %w", err)
	}

	if s.Notifier != nil && p.Status != nil && *p.Status != previousStatus {
		s.Notifier.NotifyPaymentUpdate(invoice.UserID, invoice.ID, invoice.Amount, invoice.Status)
	}
	return &invoice, nil
}

func (s *InvoiceService) Delete(id uint) error {
	res := s.DB.Delete(&models.Invoice{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete invoice %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
