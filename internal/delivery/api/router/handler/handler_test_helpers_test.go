package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"firelink/config"
	"firelink/internal/delivery/api/middleware"
	"firelink/internal/delivery/api/response"
	"firelink/internal/delivery/api/validator"
	deliverycontext "firelink/internal/delivery/context"
	"firelink/internal/infra/interaction"
	mockusecase "firelink/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const (
	testSessionID = "sid-handler"
	testHomePage  = "https://app.example.com/"
	testLinkPage  = "https://app.example.com/link"
)

type handlerFixtures struct {
	e          *echo.Echo
	broker     *interaction.Broker
	authUC     *mockusecase.MockAuthUsecase
	sessionUC  *mockusecase.MockSessionUsecase
	accountUC  *mockusecase.MockAccountUsecase
	completion *mockusecase.MockRedirectCompletion
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func createTestHandlers(t *testing.T) *handlerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	broker := interaction.NewBroker(time.Minute, logger)
	t.Cleanup(broker.Shutdown)

	f := &handlerFixtures{
		broker:     broker,
		authUC:     mockusecase.NewMockAuthUsecase(t),
		sessionUC:  mockusecase.NewMockSessionUsecase(t),
		accountUC:  mockusecase.NewMockAccountUsecase(t),
		completion: mockusecase.NewMockRedirectCompletion(t),
	}

	authHandler := NewAuthHandler(AuthHandlerParams{
		AuthUC:    f.authUC,
		SessionUC: f.sessionUC,
		AccountUC: f.accountUC,
		Broker:    broker,
		Logger:    logger,
	})
	linkHandler := NewLinkHandler(LinkHandlerParams{
		Completion: f.completion,
		Broker:     broker,
		Config: &config.Config{UI: &config.UIConfig{
			BaseURL:  "https://app.example.com/",
			LinkPath: "/link",
			HomePath: "/",
		}},
		Logger: logger,
	})
	accountHandler := NewAccountHandler(AccountHandlerParams{
		AccountUC: f.accountUC,
		Broker:    broker,
		Logger:    logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	withSession := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetSessionID(c, testSessionID)

			return next(c)
		}
	}

	auth := e.Group("/auth", withSession)
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/signin", authHandler.SignIn)
	auth.POST("/signout", authHandler.SignOut)
	auth.GET("/state", authHandler.State)
	auth.GET("/notices", authHandler.Notices)
	auth.POST("/password-reset", authHandler.PasswordReset)
	auth.GET("/callback", linkHandler.Callback)
	auth.GET("/link/prompt", linkHandler.CurrentPrompt)
	auth.POST("/link/prompt", linkHandler.AnswerPrompt)
	auth.DELETE("/link/prompt", linkHandler.CancelPrompt)

	account := e.Group("/account", withSession)
	account.POST("/links", accountHandler.AddLink)
	account.DELETE("/links/:provider", accountHandler.RemoveLink)
	account.PUT("/email", accountHandler.UpdateEmail)
	account.PUT("/profile", accountHandler.UpdateProfile)
	account.PUT("/password", accountHandler.UpdatePassword)
	account.DELETE("", accountHandler.Withdraw)

	f.e = e

	return f
}

func (f *handlerFixtures) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeFlow(t *testing.T, rec *httptest.ResponseRecorder) FlowResponse {
	t.Helper()

	var flow FlowResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &flow))

	return flow
}

func resultOutcome(t *testing.T, flow FlowResponse) string {
	t.Helper()

	result, ok := flow.Result.(map[string]any)
	require.True(t, ok, "result should be an object, got %T", flow.Result)
	outcome, _ := result["outcome"].(string)

	return outcome
}
