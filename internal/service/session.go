package service

import (
	"time"

	"lawlex/internal/repository"

	"go.uber.org/zap"
)

// SessionService expires admin authorizations
type SessionService struct {
	userRepo repository.UserRepository
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

// NewSessionService creates a new session service. A zero ttl keeps sessions forever.
func NewSessionService(userRepo repository.UserRepository, ttl time.Duration, logger *zap.Logger) *SessionService {
	return &SessionService{
		userRepo: userRepo,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Enabled reports whether sessions expire at all
func (s *SessionService) Enabled() bool {
	return s.ttl > 0
}

// CleanupExpired logs out admins whose authorization is older than the ttl
func (s *SessionService) CleanupExpired() error {
	if !s.Enabled() {
		return nil
	}

	s.logger.Info("Starting cleanup of expired admin sessions", zap.Duration("ttl", s.ttl))

	revoked, err := s.userRepo.RevokeExpired(s.now().Add(-s.ttl))
	if err != nil {
		s.logger.Error("Failed to cleanup expired sessions", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully", zap.Int64("revoked", revoked))
	return nil
}
