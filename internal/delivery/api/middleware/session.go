package middleware

import (
	"log/slog"
	"net/http"

	"firelink/config"
	deliverycontext "firelink/internal/delivery/context"
	"firelink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Tokens service.SessionTokenService
	Config *config.Config
	Logger *slog.Logger
}

// SessionMiddleware binds every request to a browser session. All redirect state is keyed by it.
type SessionMiddleware struct {
	tokens     service.SessionTokenService
	cookieName string
	maxAge     int
	secure     bool
	logger     *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	m := &SessionMiddleware{
		tokens: params.Tokens,
		logger: params.Logger,
	}
	if session := params.Config.Session; session != nil {
		m.cookieName = session.CookieName
		m.maxAge = int(session.TTL.Seconds())
		m.secure = session.Secure
	}

	return m
}

// Attach reads the signed session cookie, issuing a fresh session when it is missing or invalid.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		sessionID := ""
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			id, parseErr := m.tokens.Parse(cookie.Value)
			if parseErr != nil {
				log.Debug("Discarding invalid session cookie", slog.Any("error", parseErr))
			} else {
				sessionID = id
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			value, err := m.tokens.Issue(sessionID)
			if err != nil {
				return errors.Wrap(err, "failed to issue session cookie")
			}
			c.SetCookie(&http.Cookie{
				Name:     m.cookieName,
				Value:    value,
				Path:     "/",
				MaxAge:   m.maxAge,
				HttpOnly: true,
				Secure:   m.secure,
				// Lax keeps the cookie on the top-level GET back from the provider.
				SameSite: http.SameSiteLaxMode,
			})
		}

		deliverycontext.SetSessionID(c, sessionID)
		ctx = deliverycontext.WithSessionID(ctx, sessionID)
		ctx = deliverycontext.WithLogger(ctx, log.With(slog.String("session_id", sessionID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
