package httpsource

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lawlex/internal/catalog"
	"lawlex/internal/domain"
	"lawlex/internal/repository"
)

var _ repository.TermSource = (*TermSource)(nil)

// TermSource fetches the term list with a single GET request
type TermSource struct {
	url    string
	client *http.Client
}

// NewTermSource creates an HTTP term source. A nil client gets a 10s timeout.
func NewTermSource(url string, client *http.Client) *TermSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &TermSource{url: url, client: client}
}

// Name returns the source URL
func (s *TermSource) Name() string {
	return s.url
}

// FetchTerms requests and decodes the dictionary. Any non-2xx status is an error.
func (s *TermSource) FetchTerms(ctx context.Context) ([]domain.Term, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "lawlex-bot")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dictionary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch dictionary: HTTP error status %d", resp.StatusCode)
	}

	return catalog.Decode(resp.Body)
}
