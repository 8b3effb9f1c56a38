package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Edmond40/hotel-management-system/models"
	"github.com/Edmond40/hotel-management-system/services"
	"github.com/Edmond40/hotel-management-system/utils"
)

type RoomController struct {
	Service      *services.RoomService
	Availability *services.AvailabilityService
}

func NewRoomController(service *services.RoomService, availability *services.AvailabilityService) *RoomController {
	return &RoomController{Service: service, Availability: availability}
}

// Available lists rooms free for the requested date range.
func (rc *RoomController) Available(c *gin.Context) {
	checkIn, err := parseDate(c.Query("checkIn"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid checkIn date, expected YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(c.Query("checkOut"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid checkOut date, expected YYYY-MM-DD")
		return
	}
	if !checkOut.After(checkIn) {
		utils.JSONError(c, http.StatusBadRequest, "check-out date must be after check-in date")
		return
	}

	rooms, err := rc.Availability.AvailableRooms(checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) GetAll(c *gin.Context) {
	rooms, err := rc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := rc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

type roomRequest struct {
	Number      string             `json:"number"`
	Type        string             `json:"type"`
	Price       float64            `json:"price"`
	Capacity    int                `json:"capacity"`
	Floor       string             `json:"floor"`
	Description string             `json:"description"`
	Amenities   models.AmenityList `json:"amenities"`
	Status      models.RoomStatus  `json:"status"`
	Available   bool               `json:"available"`
}

func (r roomRequest) toModel() models.Room {
	return models.Room{
		Number:      r.Number,
		Type:        r.Type,
		Price:       r.Price,
		Capacity:    r.Capacity,
		Floor:       r.Floor,
		Description: r.Description,
		Amenities:   r.Amenities,
		Status:      r.Status,
		Available:   r.Available,
	}
}

func (rc *RoomController) Create(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	room := req.toModel()
	if room.Status == "" || room.Status == models.RoomAvailable {
		room.Available = true
	}
	if err := rc.Service.Create(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (rc *RoomController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	room := req.toModel()
	updated, err := rc.Service.Update(id, &room)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (rc *RoomController) Delete(c *gin.Context) {
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
