package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Edmond40/hotel-management-system/middleware"
	"github.com/Edmond40/hotel-management-system/models"
	"github.com/Edmond40/hotel-management-system/services"
	"github.com/Edmond40/hotel-management-system/utils"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{Service: service}
}

type reservationRequest struct {
	UserID   uint                     `json:"userId"`
	RoomID   uint                     `json:"roomId"`
	CheckIn  string                   `json:"checkIn"`
	CheckOut string                   `json:"checkOut"`
	Status   models.ReservationStatus `json:"status"`
}

func (r reservationRequest) toParams(c *gin.Context) (services.ReservationParams, bool) {
	// clients send mixed-case status values; the closed set is uppercase
	status := models.ReservationStatus(strings.ToUpper(string(r.Status)))
	p := services.ReservationParams{UserID: r.UserID, RoomID: r.RoomID, Status: status}

	if r.CheckIn != "" {
		t, err := parseDate(r.CheckIn)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid checkIn date, expected YYYY-MM-DD")
			return p, false
		}
		p.CheckIn = t
	}
	if r.CheckOut != "" {
		t, err := parseDate(r.CheckOut)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid checkOut date, expected YYYY-MM-DD")
			return p, false
		}
		p.CheckOut = t
	}
	return p, true
}

func (rc *ReservationController) GetAll(c *gin.Context) {
	reservations, err := rc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (rc *ReservationController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reservation, err := rc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// Options returns active users plus the rooms free for the requested range,
// for populating the booking form. Defaults to a one-night stay from today.
func (rc *ReservationController) Options(c *gin.Context) {
	now := time.Now()
	checkIn := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 1)

	if v := c.Query("checkIn"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid checkIn date, expected YYYY-MM-DD")
			return
		}
		checkIn = t
		checkOut = checkIn.AddDate(0, 0, 1)
	}
	if v := c.Query("checkOut"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid checkOut date, expected YYYY-MM-DD")
			return
		}
		checkOut = t
	}

	options, err := rc.Service.Options(checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

func (rc *ReservationController) Create(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	params, ok := req.toParams(c)
	if !ok {
		return
	}

	reservation, err := rc.Service.Create(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

func (rc *ReservationController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	params, ok := req.toParams(c)
	if !ok {
		return
	}

	reservation, err := rc.Service.Update(id, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (rc *ReservationController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := rc.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMine returns the authenticated guest's own bookings.
func (rc *ReservationController) ListMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	reservations, err := rc.Service.ListForUser(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// CreateMine books a room for the authenticated guest. The booking always
// starts out PENDING; only staff can confirm it.
func (rc *ReservationController) CreateMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	params, ok := req.toParams(c)
	if !ok {
		return
	}
	params.UserID = user.ID
	params.Status = models.ReservationPending

	reservation, err := rc.Service.Create(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}
