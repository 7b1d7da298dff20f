package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Name:                 "Ana",
		Email:                "ana@x.com",
		Password:             "pw123",
		PasswordConfirmation: "pw123",
		Role:                 "teacher",
	}
}

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*RegisterRequest)
		wantStep string
	}{
		{"Valid", func(r *RegisterRequest) {}, ""},
		{"MissingName", func(r *RegisterRequest) { r.Name = "" }, StepRequiredFields},
		{"MissingEmail", func(r *RegisterRequest) { r.Email = "" }, StepRequiredFields},
		{"MissingPassword", func(r *RegisterRequest) { r.Password = "" }, StepRequiredFields},
		{"MissingConfirmation", func(r *RegisterRequest) { r.PasswordConfirmation = "" }, StepRequiredFields},
		{"MissingRole", func(r *RegisterRequest) { r.Role = "" }, StepRequiredFields},
		{"UnknownRole", func(r *RegisterRequest) { r.Role = "admin" }, StepRequiredFields},
		{"MalformedEmail", func(r *RegisterRequest) { r.Email = "not-an-email" }, StepEmail},
		{"PasswordMismatch", func(r *RegisterRequest) { r.PasswordConfirmation = "other" }, StepPasswordConfirmation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			verr := ValidateRegister(req)
			if tt.wantStep == "" {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantStep, verr.Step)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name     string
		req      LoginRequest
		wantStep string
	}{
		{"Valid", LoginRequest{Email: "ana@x.com", Password: "pw123"}, ""},
		{"MissingEmail", LoginRequest{Password: "pw123"}, StepRequiredFields},
		{"MissingPassword", LoginRequest{Email: "ana@x.com"}, StepRequiredFields},
		{"MalformedEmail", LoginRequest{Email: "nope", Password: "pw123"}, StepEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateLogin(tt.req)
			if tt.wantStep == "" {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantStep, verr.Step)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("ana@x.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.org"))
	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("no-at-sign"))
	assert.False(t, ValidateEmail("missing@tld"))
}
