package models

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ActiveStatuses are the statuses that occupy a slot for conflict purposes.
// Cancelled and completed appointments never block new bookings.
var ActiveStatuses = []string{string(StatusPending), string(StatusConfirmed)}

// IsActive reports whether an appointment in this status occupies its slot.
func (s AppointmentStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo enforces the appointment lifecycle:
// pending -> confirmed -> completed, with cancellation allowed from
// pending or confirmed. Completed and cancelled are terminal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) error {
	switch s {
	case StatusPending:
		if next == StatusConfirmed || next == StatusCancelled {
			return nil
		}
	case StatusConfirmed:
		if next == StatusCompleted || next == StatusCancelled {
			return nil
		}
	}
	return fmt.Errorf("invalid status transition from %s to %s", s, next)
}

// Appointment is a consultation request record. AppointmentDate is stored
// as a string because that is the legacy wire format; historical rows vary
// in shape (with/without seconds, fractional seconds, trailing Z). New rows
// are always written in the canonical "2006-01-02T15:04:05" form.
type Appointment struct {
	ID               string            `bson:"id" json:"id"`
	DoctorID         string            `bson:"doctor_id" json:"doctor_id"`
	PatientID        string            `bson:"patient_id" json:"patient_id"`
	PatientName      string            `bson:"patient_name,omitempty" json:"patient_name,omitempty"`
	AppointmentDate  string            `bson:"appointment_date" json:"appointment_date"`
	Status           AppointmentStatus `bson:"status" json:"status"`
	Reason           string            `bson:"reason" json:"reason"`
	Notes            string            `bson:"notes,omitempty" json:"notes,omitempty"`
	ConsultationType string            `bson:"consultation_type" json:"consultation_type"`
	VideoCallID      string            `bson:"video_call_id,omitempty" json:"video_call_id,omitempty"`
	CreatedAt        time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// CreateAppointmentRequest is the payload for booking a consultation.
type CreateAppointmentRequest struct {
	DoctorID         string `json:"doctor_id" binding:"required"`
	PatientID        string `json:"patient_id"`
	PatientName      string `json:"patient_name"`
	AppointmentDate  string `json:"appointment_date" binding:"required"`
	Reason           string `json:"reason" binding:"required"`
	Notes            string `json:"notes"`
	ConsultationType string `json:"consultation_type"`
}

// UpdateAppointmentStatusRequest is the payload for status transitions.
type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required"`
}
