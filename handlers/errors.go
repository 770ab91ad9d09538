package handlers

import (
	"errors"
	"net/http"

	"telecare/services/scheduling"
	"telecare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondSchedulingError maps engine errors to HTTP responses. Conflict and
// not-available are distinct so clients can offer "pick another time"
// versus "doctor unavailable" messaging.
func respondSchedulingError(c *gin.Context, err error) {
	var notAvailable *scheduling.NotAvailableError
	var conflict *scheduling.ConflictError
	var storage *scheduling.StorageError

	switch {
	case errors.Is(err, scheduling.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or time", "message": err.Error()})
	case errors.As(err, &notAvailable):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Selected time slot is not available",
			"message":    notAvailable.Message,
			"suggestion": "Please choose a different time slot within doctor's availability hours",
		})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":      "Selected time slot is already booked",
			"message":    conflict.Message,
			"suggestion": "Please refresh the page and choose a different time slot",
		})
	case errors.As(err, &storage):
		utils.GetLogger().Error("storage failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		utils.GetLogger().Error("unexpected scheduling error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
