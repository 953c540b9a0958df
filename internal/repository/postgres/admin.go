package postgres

import (
	"database/sql"
	"errors"
	"time"
)

// AdminRepo implements repository.UserRepository on the admins table.
// Authorized chats survive bot restarts.
type AdminRepo struct {
	db *sql.DB
}

// NewAdminRepo creates a new admin repository
func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

// IsAuthorized checks if user is authorized
func (r *AdminRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM admins WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&authorized)

	if errors.Is(err, sql.ErrNoRows) {
		// Never logged in
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// AuthorizeUser marks user as authorized
func (r *AdminRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO admins (user_id, authorized, authorized_at)
		VALUES ($1, TRUE, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE, authorized_at = NOW()
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// RevokeUser clears the user's authorization
func (r *AdminRepo) RevokeUser(userID int64) error {
	query := `UPDATE admins SET authorized = FALSE WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}

// RevokeExpired logs out every admin authorized before the given time
func (r *AdminRepo) RevokeExpired(before time.Time) (int64, error) {
	query := `UPDATE admins SET authorized = FALSE WHERE authorized AND authorized_at < $1`
	result, err := r.db.Exec(query, before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
