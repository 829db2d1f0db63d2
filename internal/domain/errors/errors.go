package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	severity  Severity
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Severity returns the severity pinned on the error, or an empty value when it is classified by code.
func (e *BaseError) Severity() Severity {
	return e.severity
}

// Is matches any BaseError carrying the same error code, so copies made by WithDetails and
// WithSeverity still match the predefined errors.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithSeverity pins the severity regardless of the code's classification.
func (e *BaseError) WithSeverity(severity Severity) *BaseError {
	clone := *e
	clone.severity = severity

	return &clone
}

// Identity platform error codes
const (
	CodeAccountExistsWithDifferentCredential = "auth/account-exists-with-different-credential"
	CodeEmailAlreadyInUse                    = "auth/email-already-in-use"
	CodeWrongPassword                        = "auth/wrong-password"
	CodeUserNotFound                         = "auth/user-not-found"
	CodeCredentialAlreadyInUse               = "auth/credential-already-in-use"
	CodeInvalidIDPResponse                   = "auth/invalid-idp-response"
	CodeProviderAlreadyLinked                = "auth/provider-already-linked"
	CodeNoSuchProvider                       = "auth/no-such-provider"
	CodeRequiresRecentLogin                  = "auth/requires-recent-login"
	CodeWeakPassword                         = "auth/weak-password"
	CodeInvalidEmail                         = "auth/invalid-email"
	CodeTooManyRequests                      = "auth/too-many-requests"
	CodeUserDisabled                         = "auth/user-disabled"
	CodeUserTokenExpired                     = "auth/user-token-expired"
	CodeInvalidState                         = "auth/missing-or-invalid-nonce"
	CodeRedirectCancelledByUser              = "auth/redirect-cancelled-by-user"
	CodeInternalAuthError                    = "auth/internal-error"
	CodeAccountEmailMismatch                 = "auth/account-email-mismatch"
	CodeReservedEmailDomain                  = "auth/reserved-email-domain"
	CodeRemoveLinkBanned                     = "auth/remove-link-banned"
	CodeNoCurrentUser                        = "auth/no-current-user"
)

// Linking resolver error codes
const (
	CodeExistingProviderSignInFailed = "existing provider sign in failed"
	CodeUnknownProvider              = "unknown provider"
	CodeNotRegisteredProvider        = "not registered provider"
)

// Predefined error types
var (
	// Identity platform errors
	ErrAccountExistsWithDifferentCredential = NewBaseError(
		http.StatusConflict,
		CodeAccountExistsWithDifferentCredential,
		"An account already exists with the same email address but different sign-in credentials.",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusConflict,
		CodeEmailAlreadyInUse,
		"The email address is already in use by another account.",
		"",
	)

	ErrWrongPassword = NewBaseError(
		http.StatusUnauthorized,
		CodeWrongPassword,
		"The password is invalid.",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		CodeUserNotFound,
		"There is no user record corresponding to this identifier.",
		"",
	)

	ErrCredentialAlreadyInUse = NewBaseError(
		http.StatusConflict,
		CodeCredentialAlreadyInUse,
		"The credential is already in use by this account.",
		"",
	)

	ErrInvalidIDPResponse = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidIDPResponse,
		"The supplied provider credential is malformed or has expired.",
		"",
	)

	ErrProviderAlreadyLinked = NewBaseError(
		http.StatusConflict,
		CodeProviderAlreadyLinked,
		"The provider is already linked to this account.",
		"",
	)

	ErrNoSuchProvider = NewBaseError(
		http.StatusBadRequest,
		CodeNoSuchProvider,
		"The user is not linked to this provider.",
		"",
	)

	ErrRequiresRecentLogin = NewBaseError(
		http.StatusUnauthorized,
		CodeRequiresRecentLogin,
		"This operation is sensitive and requires a recent sign-in.",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		CodeWeakPassword,
		"The password must be 6 characters long or more.",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidEmail,
		"The email address is badly formatted.",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		CodeTooManyRequests,
		"Too many unsuccessful attempts. Try again later.",
		"",
	)

	ErrUserDisabled = NewBaseError(
		http.StatusForbidden,
		CodeUserDisabled,
		"The user account has been disabled.",
		"",
	)

	ErrUserTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		CodeUserTokenExpired,
		"The user's credential is no longer valid. The user must sign in again.",
		"",
	)

	ErrInvalidState = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidState,
		"The redirect state does not match the pending sign-in.",
		"",
	)

	ErrRedirectCancelledByUser = NewBaseError(
		http.StatusBadRequest,
		CodeRedirectCancelledByUser,
		"The redirect operation was cancelled by the user.",
		"",
	)

	ErrInternalAuthError = NewBaseError(
		http.StatusBadGateway,
		CodeInternalAuthError,
		"The identity platform returned an unexpected error.",
		"",
	)

	ErrNoCurrentUser = NewBaseError(
		http.StatusUnauthorized,
		CodeNoCurrentUser,
		"No user is currently signed in.",
		"",
	)

	// Policy violations
	ErrAccountEmailMismatch = NewBaseError(
		http.StatusConflict,
		CodeAccountEmailMismatch,
		"The signed-in account's email does not match the account being linked.",
		"",
	).WithSeverity(SeverityFatal)

	ErrReservedEmailDomain = NewBaseError(
		http.StatusBadRequest,
		CodeReservedEmailDomain,
		"This email address must be registered with its own provider.",
		"",
	)

	ErrRemoveLinkBanned = NewBaseError(
		http.StatusForbidden,
		CodeRemoveLinkBanned,
		"This provider cannot be removed from the account.",
		"",
	)

	// Linking resolver errors
	ErrExistingProviderSignInFailed = NewBaseError(
		http.StatusUnauthorized,
		CodeExistingProviderSignInFailed,
		"Sign in to provider [password] failed (specified number of times has been exceeded).",
		"",
	)

	ErrUnknownProvider = NewBaseError(
		http.StatusBadRequest,
		CodeUnknownProvider,
		"Unknown provider detected.",
		"",
	)

	ErrNotRegisteredProvider = NewBaseError(
		http.StatusBadRequest,
		CodeNotRegisteredProvider,
		"The provider is not registered.",
		"",
	)

	// Interaction errors
	ErrNoActiveFlow = NewBaseError(
		http.StatusNotFound,
		"FLOW_NOT_FOUND",
		"There is no linking flow waiting for input.",
		"",
	)

	ErrSessionRequired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_REQUIRED",
		"A session cookie is required.",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, please slow down.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
