package converter

import (
	"doctor-booking-api/internal/delivery/dto"
	"doctor-booking-api/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to its DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorProfileResponse{
		UserID:            profile.UserID,
		Specialization:    profile.Specialization,
		Experience:        profile.Experience,
		Location:          profile.Location,
		Clinic:            profile.Clinic,
		PhoneNumber:       profile.PhoneNumber,
		Bio:               profile.Bio,
		Schedule:          profile.Schedule,
		Ratings:           profile.Ratings,
		TotalAppointments: profile.TotalAppointments,
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}
}

// DoctorToResponse joins a doctor User with its profile into a directory
// entry. A nil profile becomes an empty placeholder rather than a missing
// field, so approved doctors without a profile still appear in listings.
func DoctorToResponse(user *entity.User, profile *entity.DoctorProfile) dto.DoctorResponse {
	profileResp := DoctorProfileToResponse(profile)
	if profileResp == nil {
		profileResp = &dto.DoctorProfileResponse{
			UserID:   user.ID,
			Schedule: []entity.ScheduleEntry{},
			Ratings:  []int{},
		}
	}

	return dto.DoctorResponse{
		ID:         user.ID,
		Name:       user.Name,
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		IsApproved: user.IsApproved,
		Profile:    profileResp,
	}
}
