package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/Edmond40/hotel-management-system/services"
	"github.com/Edmond40/hotel-management-system/utils"
)

type SettingController struct {
	Service *services.SettingService
}

func NewSettingController(service *services.SettingService) *SettingController {
	return &SettingController{Service: service}
}

func (sc *SettingController) Get(c *gin.Context) {
	setting, err := sc.Service.Get()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

type settingRequest struct {
	Name        *string        `json:"name"`
	Address     *string        `json:"address"`
	Phone       *string        `json:"phone"`
	Email       *string        `json:"email"`
	Website     *string        `json:"website"`
	Preferences datatypes.JSON `json:"preferences"`
}

func (sc *SettingController) Update(c *gin.Context) {
	var req settingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	setting, err := sc.Service.Update(services.SettingParams{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Preferences: req.Preferences,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}
