package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"firelink/config"
	deliverycontext "firelink/internal/delivery/context"
	"firelink/internal/domain/service"
	"firelink/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "firelink_sid"

func createTestSessionMiddleware(t *testing.T) (*SessionMiddleware, service.SessionTokenService) {
	t.Helper()

	cfg := &config.Config{Session: &config.SessionConfig{
		CookieName: testCookieName,
		SigningKey: "test-signing-key",
		TTL:        time.Hour,
	}}
	tokens, err := auth.NewSessionTokenService(cfg)
	require.NoError(t, err)

	return NewSessionMiddleware(SessionMiddlewareParams{
		Tokens: tokens,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), tokens
}

// serveWithSession runs one request through the middleware and returns the session IDs the handler saw.
func serveWithSession(t *testing.T, m *SessionMiddleware, cookie *http.Cookie) (*httptest.ResponseRecorder, string, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/state", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromEcho, fromContext string
	err := m.Attach(func(c echo.Context) error {
		fromEcho = deliverycontext.GetSessionID(c)
		fromContext = deliverycontext.GetSessionIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	return rec, fromEcho, fromContext
}

func TestSessionMiddleware_IssuesSessionWithoutCookie(t *testing.T) {
	m, tokens := createTestSessionMiddleware(t)

	rec, sessionID, ctxSessionID := serveWithSession(t, m, nil)

	require.NotEmpty(t, sessionID)
	assert.Equal(t, sessionID, ctxSessionID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	parsed, err := tokens.Parse(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, sessionID, parsed)
}

func TestSessionMiddleware_ReusesValidCookie(t *testing.T) {
	m, tokens := createTestSessionMiddleware(t)
	value, err := tokens.Issue("sid-known")
	require.NoError(t, err)

	rec, sessionID, _ := serveWithSession(t, m, &http.Cookie{Name: testCookieName, Value: value})

	assert.Equal(t, "sid-known", sessionID)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionMiddleware_ReplacesInvalidCookie(t *testing.T) {
	m, _ := createTestSessionMiddleware(t)

	rec, sessionID, _ := serveWithSession(t, m, &http.Cookie{Name: testCookieName, Value: "tampered"})

	assert.NotEmpty(t, sessionID)
	assert.Len(t, rec.Result().Cookies(), 1)
}
