package service

import (
	"fmt"
	"testing"
	"time"

	"lawlex/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestSessionService_CleanupExpired(t *testing.T) {
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{
			name:          "successful cleanup",
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("RevokeExpired", now.Add(-24*time.Hour)).Return(int64(2), tt.mockError)

			logger := testutil.NewTestLogger()
			service := NewSessionService(mockRepo, 24*time.Hour, logger)
			service.now = func() time.Time { return now }

			err := service.CleanupExpired()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSessionService_Disabled(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	service := NewSessionService(mockRepo, 0, testutil.NewTestLogger())

	assert.False(t, service.Enabled())
	assert.NoError(t, service.CleanupExpired())
	mockRepo.AssertNotCalled(t, "RevokeExpired")
}
