package usecase

import (
	"context"
	"errors"
	"time"

	"doctor-booking-api/internal/converter"
	"doctor-booking-api/internal/delivery/dto"
	"doctor-booking-api/internal/domain/entity"
	"doctor-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorUnavailable    = errors.New("the selected doctor is not available for appointments or is not yet approved")
	ErrProfileMissing       = errors.New("doctor profile data missing, cannot book appointment")
	ErrInvalidDate          = errors.New("invalid appointment date, use RFC 3339 format")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrStatusForbidden      = errors.New("you are not authorized to update this appointment status")
	ErrInvalidStatusForRole = errors.New("invalid status update for this role")
	ErrRoleForbidden        = errors.New("not authorized to view appointments")
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, customerID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.BookAppointmentResponse, error)
	ListMyAppointments(ctx context.Context, userID uuid.UUID, role string) (*dto.AppointmentListResponse, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID, requesterID uuid.UUID, role string, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	profileRepo     repository.DoctorProfileRepository
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		appointmentRepo: appointmentRepo,
	}
}

// BookAppointment creates an appointment against an approved doctor. Payment
// is simulated: the record is created already paid. The appointment insert
// and the doctor's counter increment commit in one transaction, so a failure
// between the two surfaces to the caller instead of leaving them split.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, customerID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.BookAppointmentResponse, error) {
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorUnavailable
	}

	appointmentDate, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	db := u.db.WithContext(ctx)

	doctor, err := u.userRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsBookable() {
		return nil, ErrDoctorUnavailable
	}

	profile, err := u.profileRepo.FindByUserID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find profile for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileMissing
	}

	appointment := &entity.Appointment{
		CustomerID:      customerID,
		DoctorID:        doctorID,
		AppointmentDate: appointmentDate,
		Documents:       entity.DocumentList(req.Documents),
		Status:          entity.AppointmentStatusPending,
		PaymentStatus:   entity.PaymentStatusPaid,
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.profileRepo.IncrementTotalAppointments(tx, doctorID); err != nil {
		u.log.Warnf("Failed to increment appointment counter for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit booking transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment %s booked for doctor %s by customer %s", appointment.ID, doctorID, customerID)

	return &dto.BookAppointmentResponse{
		Message:     "Appointment booked successfully. Payment confirmed.",
		Appointment: *converter.AppointmentToResponse(appointment),
	}, nil
}

// ListMyAppointments scopes the listing by role: customers see their own
// bookings, doctors their assigned queue, admins everything. Each entry is
// joined with the counterpart identity's name and email.
func (u *appointmentUsecase) ListMyAppointments(ctx context.Context, userID uuid.UUID, role string) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	var (
		appointments []entity.Appointment
		err          error
	)
	switch role {
	case entity.RoleCustomer:
		appointments, err = u.appointmentRepo.FindByCustomerID(db, userID)
	case entity.RoleDoctor:
		appointments, err = u.appointmentRepo.FindByDoctorID(db, userID)
	case entity.RoleAdmin:
		appointments, err = u.appointmentRepo.FindAll(db)
	default:
		return nil, ErrRoleForbidden
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments for user %s (%s): %+v", userID, role, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointmentStatus applies a status change under the per-role write
// rules. The ownership gate runs first (403), then the role's allowed status
// values (400); the emergency flag is applied only for the assigned doctor
// or an admin and silently ignored otherwise.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID, requesterID uuid.UUID, role string, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)
	newStatus := entity.AppointmentStatus(req.Status)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	isDoctorManagingOwn := role == entity.RoleDoctor && appointment.AssignedToDoctor(requesterID)
	isCustomerCancelingOwn := role == entity.RoleCustomer && appointment.OwnedByCustomer(requesterID) && newStatus == entity.AppointmentStatusCanceled
	isAdmin := role == entity.RoleAdmin

	if !isDoctorManagingOwn && !isCustomerCancelingOwn && !isAdmin {
		u.log.Warnf("Unauthorized status update on appointment %s by user %s (%s)", appointmentID, requesterID, role)
		return nil, ErrStatusForbidden
	}

	if !entity.CanSetStatus(role, requesterID, appointment, newStatus) {
		return nil, ErrInvalidStatusForRole
	}

	var isEmergency *bool
	if req.IsEmergency != nil && entity.CanSetEmergency(role, requesterID, appointment) {
		isEmergency = req.IsEmergency
	}

	updated, err := u.appointmentRepo.UpdateStatus(db, appointmentID, newStatus, isEmergency)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrAppointmentNotFound
	}

	u.log.Infof("Appointment %s status updated to %s by user %s (%s)", appointmentID, newStatus, requesterID, role)
	return converter.AppointmentToResponse(updated), nil
}
