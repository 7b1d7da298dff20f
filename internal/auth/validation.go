package auth

import (
	"regexp"

	"github.com/luizgag/fiap-backend-qualidade/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validation step names reported to the client so field-specific errors can
// be rendered.
const (
	StepRequiredFields       = "requiredFields"
	StepEmail                = "emailValidator"
	StepPasswordConfirmation = "password_confirmation"
)

// ValidationError reports which validation step a request failed.
type ValidationError struct {
	Step string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Step
}

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Role                 string `json:"role"`
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateEmail checks if an email has a valid format
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email) && len(email) < 255
}

// ValidateRegister runs the registration validation steps in order and
// returns the first failure.
func ValidateRegister(req RegisterRequest) *ValidationError {
	if req.Name == "" || req.Email == "" || req.Password == "" ||
		req.PasswordConfirmation == "" || req.Role == "" {
		return &ValidationError{Step: StepRequiredFields}
	}
	if !models.ValidRole(req.Role) {
		return &ValidationError{Step: StepRequiredFields}
	}
	if !ValidateEmail(req.Email) {
		return &ValidationError{Step: StepEmail}
	}
	if req.Password != req.PasswordConfirmation {
		return &ValidationError{Step: StepPasswordConfirmation}
	}
	return nil
}

// ValidateLogin runs the login validation steps in order and returns the
// first failure.
func ValidateLogin(req LoginRequest) *ValidationError {
	if req.Email == "" || req.Password == "" {
		return &ValidationError{Step: StepRequiredFields}
	}
	if !ValidateEmail(req.Email) {
		return &ValidationError{Step: StepEmail}
	}
	return nil
}
