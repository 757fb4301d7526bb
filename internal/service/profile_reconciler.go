package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"doctor-booking-api/internal/domain/entity"
	"doctor-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ProfileRetryQueueKey is the Redis list holding doctor registrations whose
// placeholder profile failed to create.
const ProfileRetryQueueKey = "doctor_profile:retry"

const reconcileTimeout = 5 * time.Second

// profileRetryEntry is one queued reconciliation item.
type profileRetryEntry struct {
	UserID   uuid.UUID `json:"user_id"`
	QueuedAt time.Time `json:"queued_at"`
}

// ProfileReconciler records doctor registrations that completed without a
// profile. Registration stays non-fatal when the profile insert fails, but
// the failure lands on a Redis queue for operators instead of vanishing
// into a log line.
type ProfileReconciler struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
	profileRepo repository.DoctorProfileRepository
}

func NewProfileReconciler(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	profileRepo repository.DoctorProfileRepository,
) *ProfileReconciler {
	return &ProfileReconciler{
		db:          db,
		redisClient: redisClient,
		log:         log,
		profileRepo: profileRepo,
	}
}

// Enqueue records a doctor user whose placeholder profile could not be
// created. Best-effort: a queue failure is logged, never propagated.
func (s *ProfileReconciler) Enqueue(ctx context.Context, userID uuid.UUID) {
	entry := profileRetryEntry{
		UserID:   userID,
		QueuedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		s.log.Errorf("Failed to marshal profile retry entry for user %s: %+v", userID, err)
		return
	}

	if err := s.redisClient.RPush(ctx, ProfileRetryQueueKey, payload).Err(); err != nil {
		s.log.Errorf("Failed to enqueue profile retry for user %s: %+v", userID, err)
		return
	}

	s.log.Warnf("Doctor profile creation failed for user %s, queued for reconciliation", userID)
}

// PendingCount reports how many registrations are waiting for reconciliation.
func (s *ProfileReconciler) PendingCount(ctx context.Context) (int64, error) {
	return s.redisClient.LLen(ctx, ProfileRetryQueueKey).Result()
}

// Reconcile drains the retry queue, creating the missing placeholder
// profiles. Returns the number of profiles created. Entries whose profile
// insert fails again are requeued.
func (s *ProfileReconciler) Reconcile(ctx context.Context) (int, error) {
	created := 0

	for {
		opCtx, cancel := context.WithTimeout(ctx, reconcileTimeout)
		payload, err := s.redisClient.LPop(opCtx, ProfileRetryQueueKey).Result()
		cancel()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return created, nil
			}
			return created, err
		}

		var entry profileRetryEntry
		if err := json.Unmarshal([]byte(payload), &entry); err != nil {
			s.log.Errorf("Dropping malformed profile retry entry: %+v", err)
			continue
		}

		existing, err := s.profileRepo.FindByUserID(s.db.WithContext(ctx), entry.UserID)
		if err != nil {
			s.requeue(ctx, payload)
			return created, err
		}
		if existing != nil {
			// Already reconciled by another path.
			continue
		}

		profile := entity.NewPlaceholderProfile(entry.UserID)
		if err := s.profileRepo.Create(s.db.WithContext(ctx), profile); err != nil {
			s.log.Warnf("Profile reconciliation failed again for user %s: %+v", entry.UserID, err)
			s.requeue(ctx, payload)
			continue
		}

		s.log.Infof("Reconciled missing doctor profile for user %s", entry.UserID)
		created++
	}
}

func (s *ProfileReconciler) requeue(ctx context.Context, payload string) {
	if err := s.redisClient.RPush(ctx, ProfileRetryQueueKey, payload).Err(); err != nil {
		s.log.Errorf("Failed to requeue profile retry entry: %+v", err)
	}
}
