package services

import (
	"context"
	"errors"
	"exercise-tracker/models"
	"exercise-tracker/validator"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		username      string
		mockSetup     func(*MockUserRepository)
		expectedUser  *models.User
		expectedError error
	}{
		{
			name:     "Success",
			username: "fcc_test",
			mockSetup: func(repo *MockUserRepository) {
				repo.On("CreateUser", ctx, "fcc_test").Return(&models.User{ID: "u1", Username: "fcc_test"}, nil)
			},
			expectedUser: &models.User{ID: "u1", Username: "fcc_test"},
		},
		{
			name:          "Empty username fails validation",
			username:      "",
			mockSetup:     func(repo *MockUserRepository) {},
			expectedError: ErrValidation,
		},
		{
			name:     "Store failure propagates",
			username: "fcc_test",
			mockSetup: func(repo *MockUserRepository) {
				repo.On("CreateUser", ctx, "fcc_test").Return(nil, errors.New("connection refused"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.mockSetup(repo)
			svc := NewUserService(repo, validator.New())

			user, err := svc.Create(ctx, models.CreateUserRequest{Username: tt.username})

			switch {
			case tt.expectedUser != nil:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
			default:
				require.Error(t, err)
				assert.Contains(t, err.Error(), "connection refused")
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns users in store order", func(t *testing.T) {
		repo := new(MockUserRepository)
		users := []models.User{{ID: "b", Username: "bob"}, {ID: "a", Username: "alice"}}
		repo.On("ListUsers", ctx).Return(users, nil)

		got, err := NewUserService(repo, validator.New()).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, users, got)
	})

	t.Run("Empty store yields empty slice", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ListUsers", ctx).Return(nil, nil)

		got, err := NewUserService(repo, validator.New()).List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Store failure", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ListUsers", ctx).Return(nil, errors.New("timeout"))

		_, err := NewUserService(repo, validator.New()).List(ctx)
		assert.ErrorContains(t, err, "timeout")
	})
}
