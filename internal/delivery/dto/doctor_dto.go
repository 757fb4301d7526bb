package dto

import (
	"time"

	"doctor-booking-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

// UpdateDoctorProfileRequest carries a partial profile update. Pointer fields
// distinguish "absent" from "set to zero value": only non-nil fields are
// applied.
type UpdateDoctorProfileRequest struct {
	Specialization *string                `json:"specialization" validate:"omitempty,min=1"`
	Experience     *int                   `json:"experience" validate:"omitempty,gte=0"`
	Location       *string                `json:"location" validate:"omitempty"`
	Clinic         *string                `json:"clinic" validate:"omitempty"`
	PhoneNumber    *string                `json:"phone_number" validate:"omitempty,max=20"`
	Bio            *string                `json:"bio" validate:"omitempty"`
	Schedule       []entity.ScheduleEntry `json:"schedule" validate:"omitempty,dive"`
}

// Response DTOs

type DoctorProfileResponse struct {
	UserID            uuid.UUID              `json:"user_id"`
	Specialization    string                 `json:"specialization"`
	Experience        int                    `json:"experience"`
	Location          string                 `json:"location"`
	Clinic            string                 `json:"clinic"`
	PhoneNumber       string                 `json:"phone_number"`
	Bio               string                 `json:"bio,omitempty"`
	Schedule          []entity.ScheduleEntry `json:"schedule"`
	Ratings           []int                  `json:"ratings"`
	TotalAppointments int                    `json:"total_appointments"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// DoctorResponse is a directory entry: identity fields joined with the
// doctor's profile.
type DoctorResponse struct {
	ID         uuid.UUID              `json:"id"`
	Name       string                 `json:"name"`
	Username   string                 `json:"username"`
	Email      string                 `json:"email"`
	Role       string                 `json:"role"`
	IsApproved bool                   `json:"is_approved"`
	Profile    *DoctorProfileResponse `json:"profile"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type PendingDoctorListResponse struct {
	Doctors []UserResponse `json:"doctors"`
	Total   int            `json:"total"`
}
