package handler

import (
	"context"
	"log/slog"

	"firelink/internal/delivery/api/response"
	deliverycontext "firelink/internal/delivery/context"
	"firelink/internal/domain/entity"
	"firelink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	SessionUC usecase.SessionUsecase
	AccountUC usecase.AccountUsecase
	Broker    FlowBroker
	Logger    *slog.Logger
}

// AuthHandler serves sign-up, sign-in, sign-out and the session view.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	sessionUC usecase.SessionUsecase
	accountUC usecase.AccountUsecase
	broker    FlowBroker
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:    params.AuthUC,
		sessionUC: params.SessionUC,
		accountUC: params.AccountUC,
		broker:    params.Broker,
		logger:    params.Logger,
	}
}

// CredentialsRequest is the body of sign-up and sign-in. Email and password are used by the Password provider only.
type CredentialsRequest struct {
	Provider    string `json:"provider" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName" validate:"omitempty,max=256"`
}

// PasswordResetRequest is the body of a password reset.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// MessageResponse acknowledges an operation without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// StateResponse is the session as the UI should render it.
type StateResponse struct {
	Decision usecase.AuthDecision      `json:"decision"`
	User     *entity.AuthenticatedUser `json:"user,omitempty"`
	Flags    entity.SessionFlags       `json:"flags"`
}

// SignUp creates an account, possibly entering the linking flow.
func (h *AuthHandler) SignUp(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	input := usecase.SignUpInput{
		SessionID:   deliverycontext.GetSessionID(c),
		Provider:    parseProvider(req.Provider),
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	}
	flow := h.broker.Start(c.Request().Context(), input.SessionID, authFlow(func(ctx context.Context) (*usecase.AuthOutput, error) {
		return h.authUC.SignUp(ctx, input)
	}))

	return renderNext(c, flow)
}

// SignIn signs in with a password or starts a provider redirect.
func (h *AuthHandler) SignIn(c echo.Context) error {
	req, err := bindCredentials(c)
	if err != nil {
		return err
	}

	input := usecase.SignInInput{
		SessionID: deliverycontext.GetSessionID(c),
		Provider:  parseProvider(req.Provider),
		Email:     req.Email,
		Password:  req.Password,
	}
	flow := h.broker.Start(c.Request().Context(), input.SessionID, authFlow(func(ctx context.Context) (*usecase.AuthOutput, error) {
		return h.authUC.SignIn(ctx, input)
	}))

	return renderNext(c, flow)
}

// SignOut ends the session.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.authUC.SignOut(c.Request().Context(), deliverycontext.GetSessionID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, MessageResponse{Message: "Signed out"})
}

// State returns what the UI may show for the session.
func (h *AuthHandler) State(c echo.Context) error {
	state, err := h.sessionUC.SyncState(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, StateResponse{Decision: state.Decision, User: state.User, Flags: state.Flags})
}

// Notices drains the session's pending notices.
func (h *AuthHandler) Notices(c echo.Context) error {
	notices, err := h.sessionUC.Notices(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}
	if notices == nil {
		notices = []entity.Notice{}
	}

	return response.OK(c, notices)
}

// PasswordReset sends a password reset email.
func (h *AuthHandler) PasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.SendPasswordResetEmail(c.Request().Context(), deliverycontext.GetSessionID(c), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, MessageResponse{Message: "Password reset email sent"})
}

func bindCredentials(c echo.Context) (*CredentialsRequest, error) {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	return &req, nil
}
