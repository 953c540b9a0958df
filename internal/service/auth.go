package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"lawlex/internal/repository"
)

// AuthService handles authentication logic
type AuthService struct {
	userRepo     repository.UserRepository
	passwordHash string
}

// NewAuthService creates a new auth service. passwordHash is the hex
// encoded SHA-256 of the admin password.
func NewAuthService(userRepo repository.UserRepository, passwordHash string) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		passwordHash: strings.ToLower(strings.TrimSpace(passwordHash)),
	}
}

// HashPassword returns the hex encoded SHA-256 of password
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	if password == "" || s.passwordHash == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(s.passwordHash)) == 1
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	return s.userRepo.IsAuthorized(userID)
}

// AuthorizeUser authorizes a user
func (s *AuthService) AuthorizeUser(userID int64) error {
	return s.userRepo.AuthorizeUser(userID)
}

// Logout revokes a user's authorization
func (s *AuthService) Logout(userID int64) error {
	return s.userRepo.RevokeUser(userID)
}
