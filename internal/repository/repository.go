package repository

import (
	"context"
	"time"

	"lawlex/internal/domain"
)

// UserRepository tracks which chat users passed the admin password
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	RevokeUser(userID int64) error
	RevokeExpired(before time.Time) (int64, error)
}

// TermSource yields the bulk term list the catalog starts from
type TermSource interface {
	FetchTerms(ctx context.Context) ([]domain.Term, error)
	Name() string
}

// TermWriter replaces the contents of a term source
type TermWriter interface {
	ReplaceAll(ctx context.Context, terms []domain.Term) error
}
