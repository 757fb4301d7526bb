package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID        string   `json:"doctor_id" validate:"required,uuid"`
	AppointmentDate string   `json:"appointment_date" validate:"required"` // RFC 3339
	Documents       []string `json:"documents" validate:"omitempty,dive,min=1"`
}

// UpdateAppointmentStatusRequest carries a status change. IsEmergency is a
// pointer so an absent field is distinguishable from an explicit false; a
// non-boolean JSON value fails decoding and the flag stays untouched.
type UpdateAppointmentStatusRequest struct {
	Status      string `json:"status" validate:"required,oneof=pending scheduled canceled completed rescheduled"`
	IsEmergency *bool  `json:"is_emergency" validate:"omitempty"`
}

// Response DTOs

// AppointmentParty is the counterpart identity attached to a listing entry.
type AppointmentParty struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type AppointmentResponse struct {
	ID              uuid.UUID         `json:"id"`
	CustomerID      uuid.UUID         `json:"customer_id"`
	DoctorID        uuid.UUID         `json:"doctor_id"`
	AppointmentDate time.Time         `json:"appointment_date"`
	Documents       []string          `json:"documents"`
	Status          string            `json:"status"`
	IsEmergency     bool              `json:"is_emergency"`
	PaymentStatus   string            `json:"payment_status"`
	Customer        *AppointmentParty `json:"customer,omitempty"`
	Doctor          *AppointmentParty `json:"doctor,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type BookAppointmentResponse struct {
	Message     string              `json:"message"`
	Appointment AppointmentResponse `json:"appointment"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
