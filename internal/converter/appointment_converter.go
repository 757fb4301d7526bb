package converter

import (
	"doctor-booking-api/internal/delivery/dto"
	"doctor-booking-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its DTO. Loaded
// Customer/Doctor associations become counterpart name/email summaries.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		CustomerID:      appointment.CustomerID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: appointment.AppointmentDate,
		Documents:       appointment.Documents,
		Status:          string(appointment.Status),
		IsEmergency:     appointment.IsEmergency,
		PaymentStatus:   string(appointment.PaymentStatus),
		Customer:        partyFromUser(&appointment.Customer),
		Doctor:          partyFromUser(&appointment.Doctor),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// partyFromUser drops unloaded associations (zero-value ID) instead of
// emitting an empty party.
func partyFromUser(user *entity.User) *dto.AppointmentParty {
	if user == nil || user.ID == uuid.Nil {
		return nil
	}
	return &dto.AppointmentParty{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
