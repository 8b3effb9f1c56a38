package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Edmond40/hotel-management-system/services"
	"github.com/Edmond40/hotel-management-system/utils"
)

// respondServiceError maps service errors onto the REST taxonomy: validation
// and conflict -> 400 (conflicts carry the blocking reservations), not-found
// -> 404, duplicate email -> 409, bad credentials -> 401, anything else ->
// logged 500.
func respondServiceError(c *gin.Context, err error) {
	var conflictErr *services.ConflictError
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":                   "Room is already booked for the selected dates",
			"conflictingReservations": conflictErr.Conflicts,
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  validationErr.Error(),
			"fields": validationErr.Fields,
		})
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, services.ErrEmailInUse):
		utils.JSONError(c, http.StatusConflict, "Email already in use")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("Invalid id %q", c.Param("id")))
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts plain dates and RFC3339 timestamps, which is what the
// booking screens send.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
