package file

import (
	"context"
	"fmt"
	"os"

	"lawlex/internal/catalog"
	"lawlex/internal/domain"
	"lawlex/internal/repository"
)

var _ repository.TermSource = (*TermSource)(nil)

// TermSource reads terms from a JSON file on disk
type TermSource struct {
	path string
}

// NewTermSource creates a file-backed term source
func NewTermSource(path string) *TermSource {
	return &TermSource{path: path}
}

// Name returns the file path
func (s *TermSource) Name() string {
	return s.path
}

// FetchTerms opens and decodes the file
func (s *TermSource) FetchTerms(ctx context.Context) ([]domain.Term, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	return catalog.Decode(f)
}

// WriteTerms writes terms to path in the export format
func WriteTerms(path string, terms []domain.Term) error {
	data, err := catalog.Encode(terms)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write dictionary: %w", err)
	}
	return nil
}
