package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserDisabled        = errors.New("user is deactivated")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("username already exists")
	ErrInvalidToken        = errors.New("invalid token")
	ErrMissingRequiredData = errors.New("missing required data")
	ErrInvalidRole         = errors.New("invalid role")
	ErrProtectedUser       = errors.New("the admin user cannot be deactivated")
)

// AuthError attaches the API error code and extra context to a base error,
// so handlers can map failures without string matching.
type AuthError struct {
	Err     error
	Code    string
	UserID  int64
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID int64, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
