package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Edmond40/hotel-management-system/middleware"
	"github.com/Edmond40/hotel-management-system/models"
	"github.com/Edmond40/hotel-management-system/services"
	"github.com/Edmond40/hotel-management-system/utils"
)

type RequestController struct {
	Service *services.RequestService
}

func NewRequestController(service *services.RequestService) *RequestController {
	return &RequestController{Service: service}
}

func (rc *RequestController) GetAll(c *gin.Context) {
	requests, err := rc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (rc *RequestController) ListMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	requests, err := rc.Service.ListForUser(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

type createRequestRequest struct {
	MenuItemID          uint   `json:"menuItemId"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions"`
}

func (rc *RequestController) CreateMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req createRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	request, err := rc.Service.Create(user, req.MenuItemID, req.Quantity, req.SpecialInstructions)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

type updateRequestStatusRequest struct {
	Status models.RequestStatus `json:"status"`
}

func (rc *RequestController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	request, err := rc.Service.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (rc *RequestController) Delete(c *gin.Context) {
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
