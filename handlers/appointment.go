package handlers

import (
	"errors"
	"net/http"

	"telecare/models"
	"telecare/services/scheduling"
	"telecare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the booking endpoints.
type AppointmentHandler struct {
	Service scheduling.Service
}

func NewAppointmentHandler(svc scheduling.Service) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// CreateAppointmentHandler books a consultation slot for the authenticated
// patient.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	patientID := c.GetString("userID")
	if patientID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Patient not authenticated"})
		return
	}

	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid appointment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	req.PatientID = patientID

	appointment, err := h.Service.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment requested successfully",
		"appointment": appointment,
	})
}

// UpdateAppointmentStatusHandler applies a lifecycle transition
// (confirm, complete, cancel).
func (h *AppointmentHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	appointmentID := c.Param("id")

	var req models.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appointment, err := h.Service.UpdateAppointmentStatus(c.Request.Context(), appointmentID, req.Status)
	if err != nil {
		var storage *scheduling.StorageError
		if errors.As(err, &storage) {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status transition", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment status updated",
		"appointment": appointment,
	})
}
