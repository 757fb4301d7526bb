package repository

import (
	"doctor-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)

	// UpdateStatus writes status and the emergency flag as a single update so
	// concurrent writers cannot interleave the two fields.
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus, isEmergency *bool) (*entity.Appointment, error)
}
