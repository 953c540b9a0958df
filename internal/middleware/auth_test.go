package middleware

import (
	"errors"
	"testing"

	"lawlex/internal/service"
	"lawlex/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name         string
		authorized   bool
		repoErr      error
		expectNext   bool
		expectDenied bool
		expectSent   string
	}{
		{
			name:       "authorized admin passes",
			authorized: true,
			expectNext: true,
		},
		{
			name:         "unauthorized user is denied",
			authorized:   false,
			expectDenied: true,
		},
		{
			name:       "repository error",
			repoErr:    errors.New("unavailable"),
			expectSent: "Something went wrong. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(testutil.MockUserRepository)
			repo.On("IsAuthorized", int64(42)).Return(tt.authorized, tt.repoErr)
			auth := service.NewAuthService(repo, service.HashPassword("secret"))

			var nextCalled, denyCalled bool
			next := func(c tele.Context) error {
				nextCalled = true
				return nil
			}
			deny := func(c tele.Context) error {
				denyCalled = true
				return nil
			}

			c := testutil.NewTextContext(42, "/export")
			err := AdminOnly(auth, testutil.NewTestLogger(), deny)(next)(c)

			require.NoError(t, err)
			assert.Equal(t, tt.expectNext, nextCalled)
			assert.Equal(t, tt.expectDenied, denyCalled)
			assert.Equal(t, tt.expectSent, c.LastText())
			repo.AssertExpectations(t)
		})
	}
}
