package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Severity ranks how a failure is surfaced to the user.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityFatal   Severity = "fatal"
)

const codeUnexpected = "app/unexpected"

// Normalized is the single application-level shape every failure is reported as.
type Normalized struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Name     string   `json:"name"`
	Severity Severity `json:"severity"`
	Stack    string   `json:"stack,omitempty"`
}

type severityPinned interface {
	Severity() Severity
}

// IsAuthError reports whether err carries an identity-platform or linking-resolver code.
func IsAuthError(err error) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return isAuthCode(appErr.ErrorCode())
}

func isAuthCode(code string) bool {
	switch code {
	case CodeExistingProviderSignInFailed, CodeUnknownProvider, CodeNotRegisteredProvider:
		return true
	}

	return strings.HasPrefix(code, "auth/")
}

// Normalize converts any error to the reported shape. Auth-domain errors are warnings,
// everything else is fatal unless the error pins its own severity.
func Normalize(err error) *Normalized {
	if err == nil {
		return nil
	}

	n := &Normalized{
		Stack: fmt.Sprintf("%+v", err),
	}

	var appErr AppError
	if !errors.As(err, &appErr) {
		n.Code = codeUnexpected
		n.Message = errors.Cause(err).Error()
		n.Name = fmt.Sprintf("%T", errors.Cause(err))
		n.Severity = SeverityFatal

		return n
	}

	n.Code = appErr.ErrorCode()
	n.Message = appErr.Message()
	n.Name = "AppError"
	n.Severity = SeverityFatal
	if isAuthCode(n.Code) {
		n.Name = "AuthError"
		n.Severity = SeverityWarning
	}

	var pinned severityPinned
	if errors.As(err, &pinned) && pinned.Severity() != "" {
		n.Severity = pinned.Severity()
	}

	return n
}
