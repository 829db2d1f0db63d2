package errors

import (
	"net/http"

	"firelink/internal/domain/entity"

	"github.com/pkg/errors"
)

// LinkingError is the "account exists with different credential" variant. It is the only error
// that triggers the linking resolver.
type LinkingError struct {
	Code       string
	Msg        string
	Email      string
	Password   string
	Credential *entity.Credential
}

// NewLinkingError builds a LinkingError for the colliding email and the credential waiting to be attached.
func NewLinkingError(email string, credential *entity.Credential) *LinkingError {
	return &LinkingError{
		Code:       CodeAccountExistsWithDifferentCredential,
		Msg:        ErrAccountExistsWithDifferentCredential.Message(),
		Email:      email,
		Credential: credential,
	}
}

// Error implements the error interface
func (e *LinkingError) Error() string {
	return e.Msg
}

// Unwrap lets errors.Is match ErrAccountExistsWithDifferentCredential.
func (e *LinkingError) Unwrap() error {
	return ErrAccountExistsWithDifferentCredential
}

// HTTPCode returns the HTTP status code
func (e *LinkingError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *LinkingError) ErrorCode() string {
	return e.Code
}

// Message returns the user-friendly error message
func (e *LinkingError) Message() string {
	return e.Msg
}

// Details returns the colliding email.
func (e *LinkingError) Details() string {
	return e.Email
}

// PendingProvider returns the provider of the credential waiting to be attached.
func (e *LinkingError) PendingProvider() entity.Provider {
	return e.Credential.Provider()
}

// AsLinkingError extracts a LinkingError from err's chain.
func AsLinkingError(err error) (*LinkingError, bool) {
	var linkErr *LinkingError
	if errors.As(err, &linkErr) && linkErr.Code == CodeAccountExistsWithDifferentCredential {
		return linkErr, true
	}

	return nil, false
}
