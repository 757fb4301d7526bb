package converter

import (
	"testing"

	"doctor-booking-api/internal/domain/entity"

	"github.com/google/uuid"
)

func TestDoctorToResponseWithProfile(t *testing.T) {
	user := &entity.User{
		ID:         uuid.New(),
		Name:       "Dr. Gregory",
		Username:   "gregory",
		Email:      "gregory@doctor.com",
		Role:       entity.RoleDoctor,
		IsApproved: true,
	}
	profile := &entity.DoctorProfile{
		UserID:            user.ID,
		Specialization:    "Diagnostics",
		Experience:        20,
		TotalAppointments: 7,
	}

	got := DoctorToResponse(user, profile)

	if got.ID != user.ID || got.Name != user.Name || got.Email != user.Email {
		t.Errorf("identity fields not carried over: %+v", got)
	}
	if got.Profile == nil {
		t.Fatal("Profile is nil")
	}
	if got.Profile.Specialization != "Diagnostics" {
		t.Errorf("Specialization = %q", got.Profile.Specialization)
	}
	if got.Profile.TotalAppointments != 7 {
		t.Errorf("TotalAppointments = %d", got.Profile.TotalAppointments)
	}
}

// An approved doctor without a profile still gets a directory entry, with an
// empty placeholder profile instead of a missing field.
func TestDoctorToResponseMissingProfile(t *testing.T) {
	user := &entity.User{
		ID:         uuid.New(),
		Name:       "Dr. NoProfile",
		Role:       entity.RoleDoctor,
		IsApproved: true,
	}

	got := DoctorToResponse(user, nil)

	if got.Profile == nil {
		t.Fatal("Profile is nil, want empty placeholder")
	}
	if got.Profile.UserID != user.ID {
		t.Errorf("placeholder UserID = %s, want %s", got.Profile.UserID, user.ID)
	}
	if got.Profile.Schedule == nil || got.Profile.Ratings == nil {
		t.Error("placeholder slices should be non-nil so they serialize as []")
	}
	if got.Profile.Specialization != "" || got.Profile.TotalAppointments != 0 {
		t.Errorf("placeholder not empty: %+v", got.Profile)
	}
}
