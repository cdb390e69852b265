package profile_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/account-keeper/internal/lib/password"
	"github.com/magabrotheeeer/account-keeper/internal/models"
	"github.com/magabrotheeeer/account-keeper/internal/services/auth"
	"github.com/magabrotheeeer/account-keeper/internal/services/profile"
	"github.com/magabrotheeeer/account-keeper/internal/storage/repository"
)

// Мок для AccountStore
type AccountStoreMock struct {
	mock.Mock
}

func (m *AccountStoreMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *AccountStoreMock) UpdateUser(ctx context.Context, userUID string, patch repository.UpdateUserPatch) (*models.User, error) {
	args := m.Called(ctx, userUID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestProfileService_Get(t *testing.T) {
	store := new(AccountStoreMock)
	storedUser := &models.User{UID: "some-uuid-string", Email: "test@example.com"}
	store.On("GetUser", mock.Anything, "some-uuid-string").Return(storedUser, nil).Once()

	svc := profile.NewProfileService(store)
	got, err := svc.Get(context.Background(), "some-uuid-string")

	assert.NoError(t, err)
	assert.Equal(t, storedUser, got)
	store.AssertExpectations(t)
}

func TestProfileService_Get_NotFound(t *testing.T) {
	store := new(AccountStoreMock)
	store.On("GetUser", mock.Anything, "no-such-uid").
		Return(nil, fmt.Errorf("repository.GetUser: %w", repository.ErrUserNotFound)).Once()

	svc := profile.NewProfileService(store)
	got, err := svc.Get(context.Background(), "no-such-uid")

	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.Nil(t, got)
}

func TestProfileService_Update(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(r *AccountStoreMock)
		wantErr    error
	}{
		{
			name:  "update without password change keeps hash",
			email: "new@example.com",
			setupMocks: func(r *AccountStoreMock) {
				r.On("UpdateUser", mock.Anything, "some-uuid-string",
					mock.MatchedBy(func(patch repository.UpdateUserPatch) bool {
						return patch.Email == "new@example.com" &&
							patch.FirstName == "Test" &&
							patch.LastName == "User" &&
							patch.PasswordHash == ""
					})).Return(&models.User{UID: "some-uuid-string", Email: "new@example.com"}, nil).Once()
			},
		},
		{
			name:     "update with new password rehashes",
			email:    "new@example.com",
			password: "NewPassword1!",
			setupMocks: func(r *AccountStoreMock) {
				r.On("UpdateUser", mock.Anything, "some-uuid-string",
					mock.MatchedBy(func(patch repository.UpdateUserPatch) bool {
						if patch.PasswordHash == "" || patch.PasswordHash == "NewPassword1!" {
							return false
						}
						return password.CompareHash(patch.PasswordHash, "NewPassword1!") == nil
					})).Return(&models.User{UID: "some-uuid-string", Email: "new@example.com"}, nil).Once()
			},
		},
		{
			name:    "invalid email shape",
			email:   "not-an-email",
			wantErr: auth.ErrInvalidEmail,
		},
		{
			name:     "weak new password rejected",
			email:    "new@example.com",
			password: "abc",
			wantErr:  auth.ErrWeakPassword,
		},
		{
			name:  "duplicate email of another record",
			email: "taken@example.com",
			setupMocks: func(r *AccountStoreMock) {
				r.On("UpdateUser", mock.Anything, "some-uuid-string", mock.Anything).
					Return(nil, fmt.Errorf("repository.UpdateUser: %w", repository.ErrEmailTaken)).Once()
			},
			wantErr: repository.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(AccountStoreMock)
			if tt.setupMocks != nil {
				tt.setupMocks(store)
			}
			svc := profile.NewProfileService(store)

			got, err := svc.Update(context.Background(), "some-uuid-string", tt.email, "Test", "User", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, got)
			}
			store.AssertExpectations(t)
		})
	}
}
