package service

import (
	"fmt"
	"testing"

	"lawlex/internal/testutil"

	"github.com/stretchr/testify/assert"
)

// SHA-256 of "admin123$"
const testPasswordHash = "0b48ee68f9de7a403027775ab3bf217e864de4ef1fee96e3c4b18974cc3df470"

func TestHashPassword(t *testing.T) {
	assert.Equal(t, testPasswordHash, HashPassword("admin123$"))
}

func TestAuthService_CheckPassword(t *testing.T) {
	tests := []struct {
		name           string
		passwordHash   string
		inputPassword  string
		expectedResult bool
	}{
		{
			name:           "correct password",
			passwordHash:   testPasswordHash,
			inputPassword:  "admin123$",
			expectedResult: true,
		},
		{
			name:           "upper case hash",
			passwordHash:   "0B48EE68F9DE7A403027775AB3BF217E864DE4EF1FEE96E3C4B18974CC3DF470",
			inputPassword:  "admin123$",
			expectedResult: true,
		},
		{
			name:           "incorrect password",
			passwordHash:   testPasswordHash,
			inputPassword:  "wrong",
			expectedResult: false,
		},
		{
			name:           "empty password",
			passwordHash:   testPasswordHash,
			inputPassword:  "",
			expectedResult: false,
		},
		{
			name:           "case sensitive",
			passwordHash:   testPasswordHash,
			inputPassword:  "Admin123$",
			expectedResult: false,
		},
		{
			name:           "no hash configured",
			passwordHash:   "",
			inputPassword:  "admin123$",
			expectedResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			service := NewAuthService(mockRepo, tt.passwordHash)

			result := service.CheckPassword(tt.inputPassword)

			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestAuthService_IsAuthorized(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockReturn    bool
		mockError     error
		expectedAuth  bool
		expectedError bool
	}{
		{
			name:          "authorized user",
			userID:        123,
			mockReturn:    true,
			mockError:     nil,
			expectedAuth:  true,
			expectedError: false,
		},
		{
			name:          "unauthorized user",
			userID:        456,
			mockReturn:    false,
			mockError:     nil,
			expectedAuth:  false,
			expectedError: false,
		},
		{
			name:          "repository error",
			userID:        789,
			mockReturn:    false,
			mockError:     fmt.Errorf("boom"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("IsAuthorized", tt.userID).Return(tt.mockReturn, tt.mockError)

			service := NewAuthService(mockRepo, testPasswordHash)

			authorized, err := service.IsAuthorized(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAuth, authorized)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_AuthorizeUser(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("AuthorizeUser", int64(123)).Return(nil)

	service := NewAuthService(mockRepo, testPasswordHash)

	err := service.AuthorizeUser(123)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Logout(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("RevokeUser", int64(123)).Return(nil)

	service := NewAuthService(mockRepo, testPasswordHash)

	err := service.Logout(123)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
