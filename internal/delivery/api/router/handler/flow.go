// Package handler contains the HTTP handlers of the auth front-end.
package handler

import (
	"context"

	"firelink/internal/delivery/api/response"
	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/infra/interaction"
	"firelink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FlowBroker runs use cases that may prompt the user or navigate away.
type FlowBroker interface {
	Start(ctx context.Context, sessionID string, fn interaction.RunFunc) *interaction.Flow
	CurrentPrompt(sessionID string) (*interaction.Event, bool)
	Answer(sessionID string, selection *entity.ProviderSelection) (*interaction.Flow, error)
	Cancel(sessionID string) (*interaction.Flow, error)
}

var _ FlowBroker = (*interaction.Broker)(nil)

// FlowStatus tells the browser what to do next.
type FlowStatus string

const (
	// FlowStatusPrompt asks the browser to render the provider prompt.
	FlowStatusPrompt FlowStatus = "prompt"
	// FlowStatusRedirect asks the browser to navigate to URL.
	FlowStatusRedirect FlowStatus = "redirect"
	// FlowStatusDone means the operation finished.
	FlowStatusDone FlowStatus = "done"
)

// FlowResponse is the body of every flow-driven endpoint.
type FlowResponse struct {
	Status  FlowStatus             `json:"status"`
	Prompt  *entity.ProviderChoice `json:"prompt,omitempty"`
	Message string                 `json:"message,omitempty"`
	URL     string                 `json:"url,omitempty"`
	Result  any                    `json:"result,omitempty"`
}

// AuthResultResponse is the result of a flow that may sign in or link.
type AuthResultResponse struct {
	Outcome usecase.AuthOutcome       `json:"outcome"`
	User    *entity.AuthenticatedUser `json:"user,omitempty"`
}

func newAuthResult(output *usecase.AuthOutput) *AuthResultResponse {
	return &AuthResultResponse{Outcome: output.Outcome, User: output.User}
}

// authFlow adapts an auth use case to a flow body.
func authFlow(run func(ctx context.Context) (*usecase.AuthOutput, error)) interaction.RunFunc {
	return func(ctx context.Context) (any, error) {
		output, err := run(ctx)
		if err != nil {
			return nil, err
		}

		return newAuthResult(output), nil
	}
}

// renderNext waits for the flow's next event and writes it as a FlowResponse.
func renderNext(c echo.Context, flow *interaction.Flow) error {
	ev, err := flow.Next(c.Request().Context())
	if err != nil {
		return errors.Wrap(err, "flow did not answer")
	}

	switch ev.Kind {
	case interaction.EventPrompt:
		return response.OK(c, FlowResponse{Status: FlowStatusPrompt, Prompt: ev.Choice, Message: ev.Message})
	case interaction.EventRedirect:
		return response.OK(c, FlowResponse{Status: FlowStatusRedirect, URL: ev.URL})
	default:
		if ev.Err != nil {
			return ev.Err
		}

		return response.OK(c, FlowResponse{Status: FlowStatusDone, Result: ev.Result})
	}
}

// parseProvider accepts either a provider name ("Google") or its wire identifier ("google.com").
func parseProvider(value string) entity.Provider {
	if provider := entity.Provider(value); provider.IsValid() {
		return provider
	}

	return entity.ToProvider(value)
}

// bindAndValidate decodes the request into req and validates its tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	return errors.WithStack(c.Validate(req))
}
