package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestCanSetStatus(t *testing.T) {
	customerID := uuid.New()
	doctorID := uuid.New()
	otherID := uuid.New()

	appt := &Appointment{
		CustomerID: customerID,
		DoctorID:   doctorID,
		Status:     AppointmentStatusPending,
	}

	tests := []struct {
		name        string
		role        string
		requesterID uuid.UUID
		newStatus   AppointmentStatus
		want        bool
	}{
		{"customer cancels own", RoleCustomer, customerID, AppointmentStatusCanceled, true},
		{"customer completes own", RoleCustomer, customerID, AppointmentStatusCompleted, false},
		{"customer schedules own", RoleCustomer, customerID, AppointmentStatusScheduled, false},
		{"customer cancels someone else's", RoleCustomer, otherID, AppointmentStatusCanceled, false},
		{"doctor schedules own", RoleDoctor, doctorID, AppointmentStatusScheduled, true},
		{"doctor completes own", RoleDoctor, doctorID, AppointmentStatusCompleted, true},
		{"doctor reschedules own", RoleDoctor, doctorID, AppointmentStatusRescheduled, true},
		{"doctor cancels own", RoleDoctor, doctorID, AppointmentStatusCanceled, true},
		{"doctor sets pending on own", RoleDoctor, doctorID, AppointmentStatusPending, false},
		{"doctor schedules unassigned appointment", RoleDoctor, otherID, AppointmentStatusScheduled, false},
		{"admin sets any status", RoleAdmin, otherID, AppointmentStatusPending, true},
		{"admin completes", RoleAdmin, otherID, AppointmentStatusCompleted, true},
		{"unknown status value", RoleAdmin, otherID, AppointmentStatus("archived"), false},
		{"unknown role", "auditor", otherID, AppointmentStatusCanceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSetStatus(tt.role, tt.requesterID, appt, tt.newStatus); got != tt.want {
				t.Errorf("CanSetStatus(%s, %s) = %v, want %v", tt.role, tt.newStatus, got, tt.want)
			}
		})
	}
}

// A completed appointment has no terminal-state protection: every role that
// may write a value may still write it.
func TestCanSetStatusNoTerminalStates(t *testing.T) {
	customerID := uuid.New()
	doctorID := uuid.New()

	appt := &Appointment{
		CustomerID: customerID,
		DoctorID:   doctorID,
		Status:     AppointmentStatusCompleted,
	}

	if !CanSetStatus(RoleDoctor, doctorID, appt, AppointmentStatusScheduled) {
		t.Error("doctor should be able to reopen a completed appointment")
	}
	if !CanSetStatus(RoleAdmin, uuid.New(), appt, AppointmentStatusPending) {
		t.Error("admin should be able to reset a completed appointment to pending")
	}
	if !CanSetStatus(RoleCustomer, customerID, appt, AppointmentStatusCanceled) {
		t.Error("customer should be able to cancel a completed appointment")
	}
}

func TestCanSetEmergency(t *testing.T) {
	customerID := uuid.New()
	doctorID := uuid.New()
	otherID := uuid.New()

	appt := &Appointment{
		CustomerID: customerID,
		DoctorID:   doctorID,
	}

	tests := []struct {
		name        string
		role        string
		requesterID uuid.UUID
		want        bool
	}{
		{"assigned doctor", RoleDoctor, doctorID, true},
		{"other doctor", RoleDoctor, otherID, false},
		{"admin", RoleAdmin, otherID, true},
		{"customer owner", RoleCustomer, customerID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSetEmergency(tt.role, tt.requesterID, appt); got != tt.want {
				t.Errorf("CanSetEmergency(%s) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestAppointmentStatusIsValid(t *testing.T) {
	valid := []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusScheduled,
		AppointmentStatusCanceled,
		AppointmentStatusCompleted,
		AppointmentStatusRescheduled,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", s)
		}
	}

	for _, s := range []AppointmentStatus{"", "archived", "PENDING"} {
		if s.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", s)
		}
	}
}
