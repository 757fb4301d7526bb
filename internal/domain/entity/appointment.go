package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending     AppointmentStatus = "pending"
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusCanceled    AppointmentStatus = "canceled"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// IsValid reports whether s is one of the five known status values.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusScheduled,
		AppointmentStatusCanceled, AppointmentStatusCompleted,
		AppointmentStatusRescheduled:
		return true
	}
	return false
}

// PaymentStatus represents the payment state of an appointment
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// DocumentList holds opaque uploaded-document names, stored as jsonb.
type DocumentList []string

func (d DocumentList) Value() (driver.Value, error) {
	if d == nil {
		return json.Marshal(DocumentList{})
	}
	return json.Marshal(d)
}

func (d *DocumentList) Scan(value interface{}) error {
	return scanJSON(value, d)
}

// Appointment represents a booking between a customer and a doctor
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"customer_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"not null" json:"appointment_date"`
	Documents       DocumentList      `gorm:"type:jsonb;not null;default:'[]'" json:"documents"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	IsEmergency     bool              `gorm:"not null;default:false" json:"is_emergency"`
	PaymentStatus   PaymentStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Customer User `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Doctor   User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// OwnedByCustomer reports whether userID is the booking customer.
func (a *Appointment) OwnedByCustomer(userID uuid.UUID) bool {
	return a.CustomerID == userID
}

// AssignedToDoctor reports whether userID is the assigned doctor.
func (a *Appointment) AssignedToDoctor(userID uuid.UUID) bool {
	return a.DoctorID == userID
}

// CanSetStatus is the status-write authorization predicate. There is no
// transition graph between the five status values; the constraint is who may
// write which value:
//   - customers may only cancel, and only their own appointment
//   - doctors may set scheduled/completed/rescheduled/canceled on
//     appointments assigned to them
//   - admins may set any status on any appointment
func CanSetStatus(role string, requesterID uuid.UUID, appt *Appointment, newStatus AppointmentStatus) bool {
	if !newStatus.IsValid() {
		return false
	}

	switch role {
	case RoleAdmin:
		return true
	case RoleDoctor:
		return appt.AssignedToDoctor(requesterID) && newStatus != AppointmentStatusPending
	case RoleCustomer:
		return appt.OwnedByCustomer(requesterID) && newStatus == AppointmentStatusCanceled
	}
	return false
}

// CanSetEmergency reports whether the requester may flip the emergency flag.
// Only the assigned doctor or an admin may; customer submissions are ignored.
func CanSetEmergency(role string, requesterID uuid.UUID, appt *Appointment) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleDoctor:
		return appt.AssignedToDoctor(requesterID)
	}
	return false
}
