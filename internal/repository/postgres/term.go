package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"lawlex/internal/domain"
	"lawlex/internal/repository"
)

var (
	_ repository.TermSource = (*TermRepo)(nil)
	_ repository.TermWriter = (*TermRepo)(nil)
)

// TermRepo reads and seeds the terms table
type TermRepo struct {
	db    *sql.DB
	table string
}

// NewTermRepo creates a new term repository
func NewTermRepo(db *sql.DB) *TermRepo {
	return &TermRepo{db: db, table: "terms"}
}

// Name identifies the source in logs and export file names
func (r *TermRepo) Name() string {
	return r.table
}

// FetchTerms returns every term in stored position order
func (r *TermRepo) FetchTerms(ctx context.Context) ([]domain.Term, error) {
	query := `
		SELECT word, COALESCE(type, ''), definition
		FROM terms
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query terms: %w", err)
	}
	defer rows.Close()

	terms := []domain.Term{}
	for rows.Next() {
		var t domain.Term
		var typ string
		if err := rows.Scan(&t.Word, &typ, &t.Definition); err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		t.Type = domain.Type(typ)
		terms = append(terms, t)
	}

	return terms, rows.Err()
}

// ReplaceAll swaps the table contents for terms in a single transaction
func (r *TermRepo) ReplaceAll(ctx context.Context, terms []domain.Term) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM terms`); err != nil {
		return fmt.Errorf("clear terms: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO terms (position, word, type, definition)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range terms {
		if _, err := stmt.ExecContext(ctx, i, t.Word, string(t.Type), t.Definition); err != nil {
			return fmt.Errorf("insert term %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Count returns the number of stored terms
func (r *TermRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM terms`).Scan(&count)
	return count, err
}
