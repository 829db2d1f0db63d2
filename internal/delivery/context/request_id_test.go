package context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestSessionID(t *testing.T) {
	c := newTestEchoContext()
	assert.Empty(t, GetSessionID(c))

	SetSessionID(c, "sid-1")
	assert.Equal(t, "sid-1", GetSessionID(c))

	ctx := WithSessionID(context.Background(), "sid-1")
	assert.Equal(t, "sid-1", GetSessionIDFromContext(ctx))
	assert.Empty(t, GetSessionIDFromContext(context.Background()))
}

func TestRequestID(t *testing.T) {
	c := newTestEchoContext()
	assert.NotEmpty(t, GetRequestID(c), "a missing request ID is generated")

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetSessionIDFromContext(ctx))
}
