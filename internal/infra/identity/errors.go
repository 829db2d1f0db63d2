package identity

import (
	"strings"

	domainerrors "firelink/internal/domain/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
)

//nolint:gochecknoglobals
var toolkitCodes = map[string]*domainerrors.BaseError{
	"EMAIL_EXISTS":                     domainerrors.ErrEmailAlreadyInUse,
	"EMAIL_NOT_FOUND":                  domainerrors.ErrUserNotFound,
	"USER_NOT_FOUND":                   domainerrors.ErrUserNotFound,
	"INVALID_PASSWORD":                 domainerrors.ErrWrongPassword,
	"INVALID_LOGIN_CREDENTIALS":        domainerrors.ErrWrongPassword,
	"USER_DISABLED":                    domainerrors.ErrUserDisabled,
	"TOO_MANY_ATTEMPTS_TRY_LATER":      domainerrors.ErrTooManyRequests,
	"WEAK_PASSWORD":                    domainerrors.ErrWeakPassword,
	"INVALID_EMAIL":                    domainerrors.ErrInvalidEmail,
	"MISSING_EMAIL":                    domainerrors.ErrInvalidEmail,
	"FEDERATED_USER_ID_ALREADY_LINKED": domainerrors.ErrCredentialAlreadyInUse,
	"CREDENTIAL_TOO_OLD_LOGIN_AGAIN":   domainerrors.ErrRequiresRecentLogin,
	"TOKEN_EXPIRED":                    domainerrors.ErrUserTokenExpired,
	"INVALID_ID_TOKEN":                 domainerrors.ErrUserTokenExpired,
	"INVALID_IDP_RESPONSE":             domainerrors.ErrInvalidIDPResponse,
	"MISSING_OR_INVALID_NONCE":         domainerrors.ErrInvalidState,
	"OPERATION_NOT_ALLOWED":            domainerrors.ErrNotRegisteredProvider,
}

// toolkitCode splits "WEAK_PASSWORD : Password should be at least 6 characters" into its parts.
func toolkitCode(message string) (code, detail string) {
	code, detail, _ = strings.Cut(message, ":")

	return strings.TrimSpace(code), strings.TrimSpace(detail)
}

// fromToolkitMessage maps an Identity Toolkit error message to a domain error.
func fromToolkitMessage(message string) error {
	code, detail := toolkitCode(message)
	if mapped, ok := toolkitCodes[code]; ok {
		if detail != "" {
			mapped = mapped.WithDetails(detail)
		}

		return errors.WithStack(mapped)
	}

	return errors.WithStack(domainerrors.ErrInternalAuthError.WithDetails(message))
}

// mapToolkitError converts an Identity Toolkit REST failure to a domain error.
func mapToolkitError(err error, op string) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return errors.Wrap(err, op)
	}

	message := apiErr.Message
	if message == "" && len(apiErr.Errors) > 0 {
		message = apiErr.Errors[0].Message
	}

	return errors.Wrap(fromToolkitMessage(message), op)
}

// mapAdminError converts a Firebase Admin SDK failure to a domain error.
func mapAdminError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case auth.IsUserNotFound(err):
		return errors.Wrap(domainerrors.ErrUserNotFound, op)
	case auth.IsEmailAlreadyExists(err):
		return errors.Wrap(domainerrors.ErrEmailAlreadyInUse, op)
	case auth.IsInvalidEmail(err):
		return errors.Wrap(domainerrors.ErrInvalidEmail, op)
	default:
		return errors.Wrap(err, op)
	}
}
