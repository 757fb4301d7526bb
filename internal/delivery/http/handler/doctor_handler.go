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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// ListApproved returns every approved doctor with profile, for the public
// directory.
func (h *DoctorHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListApprovedDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch approved doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetOwnProfile returns the logged-in doctor's profile.
func (h *DoctorHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profile, err := h.doctorUsecase.GetOwnProfile(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Doctor profile not found for this user. Please update your profile to create it.")
		default:
			response.InternalServerError(w, "Failed to fetch doctor profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateOwnProfile applies a partial update to the logged-in doctor's
// profile. Absent fields are left unchanged.
func (h *DoctorHandler) UpdateOwnProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateDoctorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.doctorUsecase.UpdateOwnProfile(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfileNotFound:
			response.NotFound(w, "Doctor profile not found for updating. Please ensure your profile exists.")
		default:
			response.InternalServerError(w, "Failed to update doctor profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}

// ListPending returns unapproved doctor accounts for the admin dashboard.
func (h *DoctorHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListPendingDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch pending doctors")
		return
	}

	response.Success(w, http.StatusOK, "Pending doctors retrieved successfully", doctors)
}

// Approve activates a pending doctor account.
func (h *DoctorHandler) Approve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	if err := h.doctorUsecase.ApproveDoctor(r.Context(), doctorID); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrNotADoctor:
			response.BadRequest(w, "User is not a doctor")
		default:
			response.InternalServerError(w, "Failed to approve doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor approved successfully", nil)
}
