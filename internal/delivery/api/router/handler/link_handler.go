package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"firelink/config"
	"firelink/internal/delivery/api/response"
	deliverycontext "firelink/internal/delivery/context"
	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/infra/interaction"
	"firelink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LinkHandlerParams holds dependencies for LinkHandler, injected by Fx.
type LinkHandlerParams struct {
	fx.In

	Completion usecase.RedirectCompletion
	Broker     FlowBroker
	Config     *config.Config
	Logger     *slog.Logger
}

// LinkHandler serves the provider callback and the provider selection prompt.
type LinkHandler struct {
	completion usecase.RedirectCompletion
	broker     FlowBroker
	linkPage   string
	homePage   string
	logger     *slog.Logger
}

// NewLinkHandler is the constructor for LinkHandler
func NewLinkHandler(params LinkHandlerParams) *LinkHandler {
	h := &LinkHandler{
		completion: params.Completion,
		broker:     params.Broker,
		linkPage:   "/link",
		homePage:   "/",
		logger:     params.Logger,
	}
	if ui := params.Config.UI; ui != nil {
		base := strings.TrimRight(ui.BaseURL, "/")
		h.linkPage = base + ui.LinkPath
		h.homePage = base + ui.HomePath
	}

	return h
}

// SelectionRequest answers the provider prompt.
type SelectionRequest struct {
	LinkProvider string `json:"linkProvider"`
	Password     string `json:"password"`
}

// Callback completes a provider redirect and sends the browser to the next page.
func (h *LinkHandler) Callback(c echo.Context) error {
	ctx := c.Request().Context()
	log := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	input := usecase.CompletionInput{
		SessionID: deliverycontext.GetSessionID(c),
		Callback: entity.RedirectCallback{
			Code:             c.QueryParam("code"),
			State:            c.QueryParam("state"),
			Error:            c.QueryParam("error"),
			ErrorDescription: c.QueryParam("error_description"),
		},
	}
	flow := h.broker.Start(ctx, input.SessionID, func(ctx context.Context) (any, error) {
		return h.completion.Complete(ctx, input)
	})

	ev, err := flow.Next(ctx)
	if err != nil {
		return errors.Wrap(err, "redirect completion did not answer")
	}

	switch ev.Kind {
	case interaction.EventRedirect:
		return c.Redirect(http.StatusFound, ev.URL)
	case interaction.EventPrompt:
		return c.Redirect(http.StatusFound, h.linkPage)
	default:
		// Failures were pushed to the session's notices; the home page shows them.
		if ev.Err != nil {
			log.Info("Redirect completion failed", slog.Any("error", ev.Err))
		}

		return c.Redirect(http.StatusFound, h.homePage)
	}
}

// CurrentPrompt returns the prompt the session's flow is waiting on.
func (h *LinkHandler) CurrentPrompt(c echo.Context) error {
	ev, ok := h.broker.CurrentPrompt(deliverycontext.GetSessionID(c))
	if !ok {
		return errors.WithStack(domainerrors.ErrNoActiveFlow)
	}

	return response.OK(c, FlowResponse{Status: FlowStatusPrompt, Prompt: ev.Choice, Message: ev.Message})
}

// AnswerPrompt submits a provider selection. The flow validates it and may prompt again.
func (h *LinkHandler) AnswerPrompt(c echo.Context) error {
	var req SelectionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	selection := &entity.ProviderSelection{Password: req.Password}
	if req.LinkProvider != "" {
		selection.LinkProvider = parseProvider(req.LinkProvider)
	}
	flow, err := h.broker.Answer(deliverycontext.GetSessionID(c), selection)
	if err != nil {
		return err
	}

	return renderNext(c, flow)
}

// CancelPrompt dismisses the prompt; the flow ends with the original linking error.
func (h *LinkHandler) CancelPrompt(c echo.Context) error {
	flow, err := h.broker.Cancel(deliverycontext.GetSessionID(c))
	if err != nil {
		return err
	}

	return renderNext(c, flow)
}
