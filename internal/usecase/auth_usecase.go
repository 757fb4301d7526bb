package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doctor-booking-api/internal/converter"
	"doctor-booking-api/internal/delivery/dto"
	"doctor-booking-api/internal/domain/entity"
	"doctor-booking-api/internal/domain/repository"
	"doctor-booking-api/internal/service"
	"doctor-booking-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists     = errors.New("user with this email already exists")
	ErrUsernameAlreadyExists  = errors.New("user with this username already exists")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAccountPendingApproval = errors.New("doctor account is pending admin approval")
	ErrUserNotFound           = errors.New("user not found")
)

const capabilityTokenKeyFormat = "capability_token:%s:%s"

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.DoctorProfileRepository
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
	reconciler   *service.ProfileReconciler
	doctorDomain string
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.DoctorProfileRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	reconciler *service.ProfileReconciler,
	doctorDomain string,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		jwtService:   jwtService,
		redisClient:  redisClient,
		reconciler:   reconciler,
		doctorDomain: doctorDomain,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	db := u.db.WithContext(ctx)
	username := entity.NormalizeUsername(req.Username)

	// Duplicates are checked independently so the caller learns which field
	// collided. The unique indexes remain the authoritative guard under
	// concurrent registration.
	existing, err := u.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email uniqueness: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	existing, err = u.userRepo.FindByUsername(db, username)
	if err != nil {
		u.log.Warnf("Failed to check username uniqueness: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameAlreadyExists
	}

	role, approved := entity.ClassifyRegistration(req.Email, u.doctorDomain)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Name:       req.Name,
		Username:   username,
		Email:      req.Email,
		Password:   string(hashedPassword),
		Role:       role,
		IsApproved: approved,
	}

	if err := u.userRepo.Create(db, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	message := "Registration successful! You can now log in."
	if user.Role == entity.RoleDoctor {
		message = "Registration successful! Your doctor account is pending admin approval."

		// The registration is already durable; a failed profile insert must
		// not undo it. The failure goes to the reconciliation queue instead.
		profile := entity.NewPlaceholderProfile(user.ID)
		if err := u.profileRepo.Create(db, profile); err != nil {
			u.log.Errorf("Failed to create doctor profile for user %s: %+v", user.ID, err)
			u.reconciler.Enqueue(ctx, user.ID)
		}
	}

	token, err := u.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	resp := authResponseFromUser(user, token)
	resp.Message = message
	return resp, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}

	// Unknown email and wrong password produce the same error so callers
	// cannot enumerate accounts.
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Approval is checked only after the credentials verified.
	if user.Role == entity.RoleDoctor && !user.IsApproved {
		return nil, ErrAccountPendingApproval
	}

	token, err := u.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return authResponseFromUser(user, token), nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// issueToken signs a capability token and records its ID in Redis so it can
// be revoked before the 30-day expiry.
func (u *authUsecase) issueToken(ctx context.Context, user *entity.User) (string, error) {
	token, tokenID, err := u.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return "", err
	}

	key := fmt.Sprintf(capabilityTokenKeyFormat, user.ID.String(), tokenID)
	if err := u.redisClient.Set(ctx, key, "valid", u.jwtService.GetTokenExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store token in Redis: %+v", err)
		return "", err
	}

	return token, nil
}

func authResponseFromUser(user *entity.User, token string) *dto.AuthResponse {
	return &dto.AuthResponse{
		ID:         user.ID,
		Name:       user.Name,
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		IsApproved: user.IsApproved,
		Token:      token,
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
