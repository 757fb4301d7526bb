package repository

import (
	"doctor-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindDoctorsByApproval(db *gorm.DB, approved bool) ([]entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
}
