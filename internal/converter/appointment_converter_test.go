package converter

import (
	"testing"
	"time"

	"doctor-booking-api/internal/domain/entity"

	"github.com/google/uuid"
)

func TestAppointmentToResponse(t *testing.T) {
	customerID := uuid.New()
	doctorID := uuid.New()
	date := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	appt := &entity.Appointment{
		ID:              uuid.New(),
		CustomerID:      customerID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		Documents:       entity.DocumentList{"referral.pdf"},
		Status:          entity.AppointmentStatusPending,
		PaymentStatus:   entity.PaymentStatusPaid,
		Doctor: entity.User{
			ID:    doctorID,
			Name:  "Dr. Watson",
			Email: "watson@doctor.com",
		},
	}

	got := AppointmentToResponse(appt)

	if got.Status != "pending" || got.PaymentStatus != "paid" {
		t.Errorf("status fields = %q/%q, want pending/paid", got.Status, got.PaymentStatus)
	}
	if !got.AppointmentDate.Equal(date) {
		t.Errorf("AppointmentDate = %v, want %v", got.AppointmentDate, date)
	}
	if len(got.Documents) != 1 || got.Documents[0] != "referral.pdf" {
		t.Errorf("Documents = %v", got.Documents)
	}

	// The loaded doctor association becomes a counterpart summary; the
	// unloaded customer association is dropped, not emitted empty.
	if got.Doctor == nil {
		t.Fatal("Doctor party is nil")
	}
	if got.Doctor.Name != "Dr. Watson" || got.Doctor.Email != "watson@doctor.com" {
		t.Errorf("Doctor party = %+v", got.Doctor)
	}
	if got.Customer != nil {
		t.Errorf("Customer party = %+v, want nil for unloaded association", got.Customer)
	}
}

func TestAppointmentsToResponses(t *testing.T) {
	appts := []entity.Appointment{
		{ID: uuid.New(), Status: entity.AppointmentStatusScheduled},
		{ID: uuid.New(), Status: entity.AppointmentStatusCanceled},
	}

	got := AppointmentsToResponses(appts)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Status != "scheduled" || got[1].Status != "canceled" {
		t.Errorf("statuses = %q, %q", got[0].Status, got[1].Status)
	}
}

func TestAppointmentToResponseNil(t *testing.T) {
	if got := AppointmentToResponse(nil); got != nil {
		t.Errorf("AppointmentToResponse(nil) = %+v, want nil", got)
	}
}
