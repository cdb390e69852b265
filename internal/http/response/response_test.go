package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWithData(t *testing.T) {
	resp := OKWithData(map[string]any{"uid": "some-uuid-string"})

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, map[string]any{"uid": "some-uuid-string"}, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("invalid request body")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "invalid request body", resp.Error)
	assert.Nil(t, resp.Data)
}

func TestValidationError(t *testing.T) {
	type request struct {
		Email           string `validate:"required,email"`
		Password        string `validate:"required,min=6"`
		PasswordConfirm string `validate:"eqfield=Password"`
	}

	tests := []struct {
		name    string
		req     request
		wantMsg string
	}{
		{
			name:    "missing required field",
			req:     request{Email: "user@example.com", PasswordConfirm: ""},
			wantMsg: "field Password is a required field",
		},
		{
			name:    "bad email",
			req:     request{Email: "not-an-email", Password: "Password1!", PasswordConfirm: "Password1!"},
			wantMsg: "field Email must be a valid email address",
		},
		{
			name:    "short password",
			req:     request{Email: "user@example.com", Password: "abc", PasswordConfirm: "abc"},
			wantMsg: "field Password is too short",
		},
		{
			name:    "mismatched confirmation",
			req:     request{Email: "user@example.com", Password: "Password1!", PasswordConfirm: "Password2!"},
			wantMsg: "field PasswordConfirm does not match",
		},
	}

	v := validator.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			require.Error(t, err)

			resp := ValidationError(err.(validator.ValidationErrors))
			assert.Equal(t, StatusError, resp.Status)
			assert.Contains(t, resp.Error, tt.wantMsg)
		})
	}
}
