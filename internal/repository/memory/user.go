package memory

import (
	"sync"
	"time"
)

// UserRepo implements repository.UserRepository for the lifetime of the process
type UserRepo struct {
	mu         sync.RWMutex
	authorized map[int64]time.Time
}

// NewUserRepo creates a new in-memory user repository
func NewUserRepo() *UserRepo {
	return &UserRepo{authorized: make(map[int64]time.Time)}
}

// IsAuthorized checks if user is authorized
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.authorized[userID]
	return ok, nil
}

// AuthorizeUser marks user as authorized
func (r *UserRepo) AuthorizeUser(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authorized[userID] = time.Now()
	return nil
}

// RevokeUser forgets the user's authorization
func (r *UserRepo) RevokeUser(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.authorized, userID)
	return nil
}

// RevokeExpired forgets every authorization granted before the given time
func (r *UserRepo) RevokeExpired(before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var revoked int64
	for id, at := range r.authorized {
		if at.Before(before) {
			delete(r.authorized, id)
			revoked++
		}
	}
	return revoked, nil
}
