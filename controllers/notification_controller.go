package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Edmond40/hotel-management-system/middleware"
	"github.com/Edmond40/hotel-management-system/services"
	"github.com/Edmond40/hotel-management-system/utils"
)

// NotificationController exposes the per-user inbox. Every route is scoped to
// the authenticated user; there is no cross-user access.
type NotificationController struct {
	Service *services.NotificationService
}

func NewNotificationController(service *services.NotificationService) *NotificationController {
	return &NotificationController{Service: service}
}

func (nc *NotificationController) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	notifications, err := nc.Service.ListForUser(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := nc.Service.MarkRead(id, user.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := nc.Service.MarkAllRead(user.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

func (nc *NotificationController) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := nc.Service.Delete(id, user.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (nc *NotificationController) DeleteAll(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := nc.Service.DeleteAll(user.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
