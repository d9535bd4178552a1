package staff

import (
	"context"
	"errors"
	"time"

	"staff-service/internal/apperr"
	"staff-service/internal/auth/profile"
	"staff-service/internal/auth/provider"
	"staff-service/internal/logger"
	"staff-service/internal/metrics"
	"staff-service/internal/orphan"
)

const msgCredentialsRequired = "Email and password required"

var ErrNoUser = errors.New("identity provider returned no user")

type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Result struct {
	UserID string
}

// Service provisions staff accounts: one identity, then one profile row.
// A failed profile insert does not remove the identity; it is recorded in
// the orphan ledger instead.
type Service struct {
	identities provider.IdentityProvider
	profiles   profile.Store
	orphans    orphan.Ledger
	now        func() time.Time
}

func NewService(
	identities provider.IdentityProvider,
	profiles profile.Store,
	orphans orphan.Ledger,
) *Service {
	if orphans == nil {
		orphans = orphan.Nop{}
	}
	return &Service{
		identities: identities,
		profiles:   profiles,
		orphans:    orphans,
		now:        time.Now,
	}
}

func (s *Service) Provision(ctx context.Context, req Request) (*Result, error) {

	if req.Email == "" || req.Password == "" {
		metrics.Provisions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, apperr.Validation(msgCredentialsRequired)
	}

	start := s.now()
	defer func() {
		metrics.ProvisionDuration.Observe(s.now().Sub(start).Seconds())
	}()

	// 1. Create the authentication identity
	user, err := s.identities.CreateUser(ctx, req.Email, req.Password, true)
	if err != nil {
		metrics.Provisions.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, apperr.Internal(err)
	}
	if user == nil {
		metrics.Provisions.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, apperr.Internal(ErrNoUser)
	}

	logger.Info("staff identity created", map[string]any{
		"user_id": user.ID,
	})

	// 2. Insert the profile row
	err = s.profiles.Insert(ctx, profile.Profile{
		ID:    user.ID,
		Email: user.Email,
		Role:  profile.RoleStaff,
	})
	if err != nil {
		metrics.Provisions.WithLabelValues(metrics.OutcomeOrphaned).Inc()
		s.recordOrphan(ctx, user.ID, user.Email, err)
		return nil, apperr.Internal(err)
	}

	metrics.Provisions.WithLabelValues(metrics.OutcomeCreated).Inc()

	return &Result{UserID: user.ID}, nil
}

func (s *Service) recordOrphan(ctx context.Context, userID, email string, cause error) {
	logger.Warn("profile insert failed after identity creation", map[string]any{
		"user_id": userID,
		"error":   cause.Error(),
	})

	err := s.orphans.Record(ctx, orphan.Entry{
		UserID:    userID,
		Email:     email,
		Reason:    cause.Error(),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		logger.Error("failed to record orphaned identity", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
