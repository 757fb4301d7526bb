package handler

import (
	"encoding/json"
	"net/http"

	"doctor-booking-api/internal/delivery/dto"
	"doctor-booking-api/internal/delivery/http/middleware"
	"doctor-booking-api/internal/usecase"
	"doctor-booking-api/pkg/response"
	"doctor-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Book creates an appointment for the authenticated user against a doctor.
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.appointmentUsecase.BookAppointment(r.Context(), customerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorUnavailable, usecase.ErrInvalidDate:
			response.BadRequest(w, err.Error())
		case usecase.ErrProfileMissing:
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, result.Message, result)
}

// ListMine returns the appointments visible to the authenticated user,
// scoped by role.
func (h *AppointmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	role, ok := middleware.GetRoleFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.appointmentUsecase.ListMyAppointments(r.Context(), userID, role)
	if err != nil {
		switch err {
		case usecase.ErrRoleForbidden:
			response.Forbidden(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to fetch appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", result)
}

// UpdateStatus changes an appointment's status under the per-role rules.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	role, ok := middleware.GetRoleFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.appointmentUsecase.UpdateAppointmentStatus(r.Context(), appointmentID, userID, role, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, err.Error())
		case usecase.ErrStatusForbidden:
			response.Forbidden(w, err.Error())
		case usecase.ErrInvalidStatusForRole:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", result)
}
