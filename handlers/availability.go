package handlers

import (
	"net/http"

	"telecare/models"
	"telecare/services/scheduling"
	"telecare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes weekly-availability and slot endpoints.
type AvailabilityHandler struct {
	Service scheduling.Service
}

func NewAvailabilityHandler(svc scheduling.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetWeeklyAvailabilityHandler returns the doctor's full week, creating the
// all-unavailable default on first read.
func (h *AvailabilityHandler) GetWeeklyAvailabilityHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	if doctorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing doctor id"})
		return
	}

	availability, err := h.Service.GetWeeklyAvailability(c.Request.Context(), doctorID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": availability})
}

// SetWeeklyAvailabilityHandler replaces the authenticated doctor's week.
func (h *AvailabilityHandler) SetWeeklyAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID := c.GetString("userID")
	if doctorID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Doctor not authenticated"})
		return
	}

	var week map[string]models.DayAvailability
	if err := c.ShouldBindJSON(&week); err != nil {
		logger.Error("Invalid availability payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	availability, err := h.Service.SetWeeklyAvailability(c.Request.Context(), doctorID, week)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Availability updated successfully",
		"availability": availability,
	})
}

// GetDayAvailabilityHandler returns the open ranges for one weekday.
func (h *AvailabilityHandler) GetDayAvailabilityHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	weekday := c.Param("weekday")

	ranges, err := h.Service.GetDayAvailability(c.Request.Context(), doctorID, weekday)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	if ranges == nil {
		ranges = []models.TimeRange{}
	}
	c.JSON(http.StatusOK, gin.H{"time_slots": ranges})
}

// GetSlotsHandler returns the generated 30-minute slot grid for a date.
func (h *AvailabilityHandler) GetSlotsHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}

	slots, err := h.Service.GetSlotsForDate(c.Request.Context(), doctorID, date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// CheckSlotHandler reports whether a specific datetime is already booked
// and whether it falls within the doctor's availability.
func (h *AvailabilityHandler) CheckSlotHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	datetime := c.Query("datetime")
	if datetime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing datetime query parameter"})
		return
	}

	booked, err := h.Service.IsSlotBooked(c.Request.Context(), doctorID, datetime)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	valid, message, err := h.Service.ValidateSlot(c.Request.Context(), doctorID, datetime)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_booked":           booked,
		"within_availability": valid,
		"message":             message,
	})
}
