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

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Broker    FlowBroker
	Logger    *slog.Logger
}

// AccountHandler serves operations on the signed-in account.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	broker    FlowBroker
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		broker:    params.Broker,
		logger:    params.Logger,
	}
}

// AddLinkRequest attaches a provider. Email and password are used by the Password provider only.
type AddLinkRequest struct {
	Provider string `json:"provider" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// UpdateEmailRequest changes the account email.
type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest changes the profile. Absent fields are left untouched.
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,max=256"`
	PhotoURL    *string `json:"photoUrl" validate:"omitempty,url"`
}

// UpdatePasswordRequest sets a new password.
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// AddLink attaches a provider, redirecting for federated providers.
func (h *AccountHandler) AddLink(c echo.Context) error {
	var req AddLinkRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := usecase.AddLinkInput{
		SessionID: deliverycontext.GetSessionID(c),
		Provider:  parseProvider(req.Provider),
		Email:     req.Email,
		Password:  req.Password,
	}
	flow := h.broker.Start(c.Request().Context(), input.SessionID, authFlow(func(ctx context.Context) (*usecase.AuthOutput, error) {
		return h.accountUC.AddLink(ctx, input)
	}))

	return renderNext(c, flow)
}

// RemoveLink detaches the provider named in the path.
func (h *AccountHandler) RemoveLink(c echo.Context) error {
	user, err := h.accountUC.RemoveLink(c.Request().Context(), deliverycontext.GetSessionID(c), parseProvider(c.Param("provider")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// UpdateEmail changes the account email.
func (h *AccountHandler) UpdateEmail(c echo.Context) error {
	var req UpdateEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.UpdateEmail(c.Request().Context(), deliverycontext.GetSessionID(c), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// UpdateProfile changes display name and photo.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	update := entity.ProfileUpdate{DisplayName: req.DisplayName, PhotoURL: req.PhotoURL}
	user, err := h.accountUC.UpdateProfile(c.Request().Context(), deliverycontext.GetSessionID(c), update)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// UpdatePassword sets a new password.
func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	var req UpdatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.UpdatePassword(c.Request().Context(), deliverycontext.GetSessionID(c), req.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, MessageResponse{Message: "Password updated"})
}

// Withdraw deletes the account.
func (h *AccountHandler) Withdraw(c echo.Context) error {
	if err := h.accountUC.Withdraw(c.Request().Context(), deliverycontext.GetSessionID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, MessageResponse{Message: "Account deleted"})
}
