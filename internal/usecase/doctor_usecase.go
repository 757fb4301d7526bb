package usecase

import (
	"context"
	"errors"

	"doctor-booking-api/internal/converter"
	"doctor-booking-api/internal/delivery/dto"
	"doctor-booking-api/internal/domain/entity"
	"doctor-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("doctor profile not found")
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrNotADoctor      = errors.New("user is not a doctor")
)

type DoctorUsecase interface {
	ListApprovedDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	GetOwnProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorProfileResponse, error)
	UpdateOwnProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error)
	ListPendingDoctors(ctx context.Context) (*dto.PendingDoctorListResponse, error)
	ApproveDoctor(ctx context.Context, doctorID uuid.UUID) error
}

type doctorUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	profileRepo repository.DoctorProfileRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.DoctorProfileRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// ListApprovedDoctors returns every approved doctor joined with its profile.
// A doctor missing a profile still appears, carrying an empty placeholder.
func (u *doctorUsecase) ListApprovedDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	db := u.db.WithContext(ctx)

	doctors, err := u.userRepo.FindDoctorsByApproval(db, true)
	if err != nil {
		u.log.Warnf("Failed to list approved doctors: %+v", err)
		return nil, err
	}

	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		profile, err := u.profileRepo.FindByUserID(db, doctors[i].ID)
		if err != nil {
			u.log.Warnf("Failed to load profile for doctor %s: %+v", doctors[i].ID, err)
			return nil, err
		}
		responses = append(responses, converter.DoctorToResponse(&doctors[i], profile))
	}

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorProfileResponse, error) {
	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorUsecase) UpdateOwnProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	db := u.db.WithContext(ctx)

	profile, err := u.profileRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find profile for user %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	applyProfileUpdate(profile, req)

	if err := u.profileRepo.Update(db, profile); err != nil {
		u.log.Warnf("Failed to update profile for user %s: %+v", userID, err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(profile), nil
}

func (u *doctorUsecase) ListPendingDoctors(ctx context.Context) (*dto.PendingDoctorListResponse, error) {
	doctors, err := u.userRepo.FindDoctorsByApproval(u.db.WithContext(ctx), false)
	if err != nil {
		u.log.Warnf("Failed to list pending doctors: %+v", err)
		return nil, err
	}

	return &dto.PendingDoctorListResponse{
		Doctors: converter.UsersToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// ApproveDoctor flips the approval flag. Approving an already-approved
// doctor is a no-op success.
func (u *doctorUsecase) ApproveDoctor(ctx context.Context, doctorID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", doctorID, err)
		return err
	}
	if user == nil {
		return ErrDoctorNotFound
	}
	if !user.IsDoctor() {
		return ErrNotADoctor
	}
	if user.IsApproved {
		return nil
	}

	user.IsApproved = true
	if err := u.userRepo.Update(db, user); err != nil {
		u.log.Warnf("Failed to approve doctor %s: %+v", doctorID, err)
		return err
	}

	u.log.Infof("Doctor account %s (ID: %s) approved", user.Email, user.ID)
	return nil
}

// applyProfileUpdate merges a partial update into the profile. Only fields
// present in the request (non-nil pointers) overwrite; absent fields keep
// their stored value.
func applyProfileUpdate(profile *entity.DoctorProfile, req *dto.UpdateDoctorProfileRequest) {
	if req.Specialization != nil {
		profile.Specialization = *req.Specialization
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Clinic != nil {
		profile.Clinic = *req.Clinic
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Schedule != nil {
		profile.Schedule = entity.ScheduleList(req.Schedule)
	}
}
