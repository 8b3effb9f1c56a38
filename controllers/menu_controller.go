package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Edmond40/hotel-management-system/models"
	"github.com/Edmond40/hotel-management-system/services"
	"github.com/Edmond40/hotel-management-system/utils"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

func (mc *MenuController) GetAll(c *gin.Context) {
	items, err := mc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GuestMenu returns available items grouped by category.
func (mc *MenuController) GuestMenu(c *gin.Context) {
	grouped, err := mc.Service.GroupedByCategory()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

type menuItemRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Available   *bool    `json:"available"`
	Description *string  `json:"description"`
}

func (mc *MenuController) Create(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item := models.MenuItem{Available: true}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	if err := mc.Service.Create(&item); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (mc *MenuController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item, err := mc.Service.Update(id, services.MenuItemParams{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Available:   req.Available,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (mc *MenuController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := mc.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
