package repository

import (
	"doctor-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	IncrementTotalAppointments(db *gorm.DB, userID uuid.UUID) error
}
