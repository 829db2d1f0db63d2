// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"firelink/config"
	"firelink/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const sessionTokenType = "session"

// sessionTokenService signs session ids into the session cookie using HMAC JWTs.
type sessionTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type sessionClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// NewSessionTokenService is the constructor for sessionTokenService.
func NewSessionTokenService(cfg *config.Config) (service.SessionTokenService, error) {
	if cfg.Session == nil || cfg.Session.SigningKey == "" {
		return nil, errors.New("session signing key must be provided")
	}

	return &sessionTokenService{
		secret: []byte(cfg.Session.SigningKey),
		ttl:    cfg.Session.TTL,
		now:    time.Now,
	}, nil
}

// Issue signs sessionID into a cookie value.
func (s *sessionTokenService) Issue(sessionID string) (string, error) {
	now := s.now()
	claims := sessionClaims{
		Type: sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return token, nil
}

// Parse verifies a cookie value and returns the session id it carries.
func (s *sessionTokenService) Parse(token string) (string, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", errors.Wrap(err, "invalid session token")
	}
	if !parsed.Valid || claims.Type != sessionTokenType || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}

	return claims.Subject, nil
}
