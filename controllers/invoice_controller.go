package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Edmond40/hotel-management-system/middleware"
	"github.com/Edmond40/hotel-management-system/models"
	"github.com/Edmond40/hotel-management-system/services"
	"github.com/Edmond40/hotel-management-system/utils"
)

type InvoiceController struct {
	Service *services.InvoiceService
}

func NewInvoiceController(service *services.InvoiceService) *InvoiceController {
	return &InvoiceController{Service: service}
}

func (ic *InvoiceController) GetAll(c *gin.Context) {
	invoices, err := ic.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// ListMine returns the authenticated guest's payment history.
func (ic *InvoiceController) ListMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	invoices, err := ic.Service.ListForUser(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

type invoiceRequest struct {
	UserID *uint                 `json:"userId"`
	Amount *float64              `json:"amount"`
	Status *models.InvoiceStatus `json:"status"`
}

func (ic *InvoiceController) Create(c *gin.Context) {
	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var userID uint
	if req.UserID != nil {
		userID = *req.UserID
	}
	var amount float64
	if req.Amount != nil {
		amount = *req.Amount
	}
	var status models.InvoiceStatus
	if req.Status != nil {
		status = *req.Status
	}

	invoice, err := ic.Service.Create(userID, amount, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (ic *InvoiceController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	invoice, err := ic.Service.Update(id, services.InvoiceParams{
		UserID: req.UserID,
		Amount: req.Amount,
		Status: req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (ic *InvoiceController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ic.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
