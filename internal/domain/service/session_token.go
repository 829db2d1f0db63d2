package service

// SessionTokenService signs and verifies the session cookie value.
type SessionTokenService interface {
	// Issue signs sessionID into a cookie value.
	Issue(sessionID string) (string, error)

	// Parse verifies a cookie value and returns the session id it carries.
	Parse(token string) (string, error)
}
