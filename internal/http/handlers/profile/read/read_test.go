package read

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/account-keeper/internal/http/middlewarectx"
	"github.com/magabrotheeeer/account-keeper/internal/models"
	"github.com/magabrotheeeer/account-keeper/internal/storage/repository"
)

// Мок сервиса с методом Get
type ProfileServiceMock struct {
	mock.Mock
}

func (m *ProfileServiceMock) Get(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestReadHandler_ServeHTTP(t *testing.T) {
	createdAt := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	storedUser := &models.User{
		UID:          "some-uuid-string",
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Liddell",
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		CreatedAt:    createdAt,
	}

	tests := []struct {
		name           string
		ctxUID         any
		mockUser       *models.User
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "profile returned",
			ctxUID:         "some-uuid-string",
			mockUser:       storedUser,
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing uid in context",
			ctxUID:         nil,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "unauthorized",
		},
		{
			name:           "user not found",
			ctxUID:         "stale-uid",
			mockErr:        fmt.Errorf("repository.GetUser: %w", repository.ErrUserNotFound),
			mockCalled:     true,
			wantStatusCode: http.StatusNotFound,
			wantError:      "user not found",
		},
		{
			name:           "storage error",
			ctxUID:         "some-uuid-string",
			mockErr:        errors.New("redis is down"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "could not read profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ProfileServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.mockCalled {
				serviceMock.On("Get", mock.Anything, tt.ctxUID).
					Return(tt.mockUser, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			if tt.ctxUID != nil {
				ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.ctxUID)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp struct {
				Status string         `json:"status"`
				Error  string         `json:"error"`
				Data   map[string]any `json:"data"`
			}
			err := json.Unmarshal(rec.Body.Bytes(), &resp)
			assert.NoError(t, err)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp.Error)
			}
			if tt.wantStatusCode == http.StatusOK {
				assert.Equal(t, "some-uuid-string", resp.Data["uid"])
				assert.Equal(t, "alice@example.com", resp.Data["email"])
				assert.Equal(t, "Alice", resp.Data["first_name"])
				assert.Equal(t, "Liddell", resp.Data["last_name"])
				assert.Equal(t, createdAt.Format(time.RFC3339), resp.Data["created_at"])
				// Хэш пароля не должен попадать в ответ.
				_, hasHash := resp.Data["password_hash"]
				assert.False(t, hasHash)
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
