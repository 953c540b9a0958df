package httpsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lawlex/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermSource_FetchTerms(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedTerms []domain.Term
		expectedError bool
	}{
		{
			name:   "ok",
			status: http.StatusOK,
			body:   `[{"word":"Tort","type":"n","definition":"A civil wrong"}]`,
			expectedTerms: []domain.Term{
				{Word: "Tort", Type: domain.TypeNoun, Definition: "A civil wrong"},
			},
		},
		{
			name:          "not found",
			status:        http.StatusNotFound,
			body:          `not found`,
			expectedError: true,
		},
		{
			name:          "server error",
			status:        http.StatusInternalServerError,
			body:          `[]`,
			expectedError: true,
		},
		{
			name:          "malformed body",
			status:        http.StatusOK,
			body:          `<html></html>`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			source := NewTermSource(server.URL, server.Client())
			terms, err := source.FetchTerms(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTerms, terms)
		})
	}
}

func TestTermSource_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	source := NewTermSource(url, nil)
	_, err := source.FetchTerms(context.Background())

	assert.Error(t, err)
	assert.Equal(t, url, source.Name())
}
