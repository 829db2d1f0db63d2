package impl

import (
	"context"
	"fmt"
	"log/slog"

	"firelink/config"
	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/domain/service"
	"firelink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RedirectCompletionParams holds dependencies for the redirect completion handler, injected by Fx.
type RedirectCompletionParams struct {
	fx.In

	Gateway   service.IdentityGateway
	State     *RedirectState
	Resolver  usecase.LinkResolver
	Navigator service.Navigator
	Policy    service.EmailDomainPolicy
	Notifier  service.Notifier
	Publisher service.LinkEventPublisher
	Metrics   service.FlowMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

type redirectCompletion struct {
	flowSupport

	gateway        service.IdentityGateway
	state          *RedirectState
	resolver       usecase.LinkResolver
	navigator      service.Navigator
	policy         service.EmailDomainPolicy
	enforceDomains bool
}

// NewRedirectCompletion is the constructor for the redirect completion handler.
func NewRedirectCompletion(params RedirectCompletionParams) usecase.RedirectCompletion {
	enforceDomains := true
	if params.Config != nil && params.Config.Link != nil {
		enforceDomains = params.Config.Link.EnforceReservedDomains
	}

	return &redirectCompletion{
		flowSupport: flowSupport{
			notifier:  params.Notifier,
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		gateway:        params.Gateway,
		state:          params.State,
		resolver:       params.Resolver,
		navigator:      params.Navigator,
		policy:         params.Policy,
		enforceDomains: enforceDomains,
	}
}

// redirectRound is everything one provider callback consumed from the redirect state.
type redirectRound struct {
	sessionID string
	intent    *entity.RedirectIntent
	pending   *entity.PendingCredential
	handshake *entity.ProviderHandshake
}

func (r *redirectRound) correlationID() string {
	if r.pending != nil {
		return r.pending.CorrelationID
	}

	return ""
}

// Complete consumes the redirect state first, so a second invocation for the same callback is a no-op.
func (c *redirectCompletion) Complete(ctx context.Context, input usecase.CompletionInput) (output *usecase.CompletionOutput, err error) {
	defer func() {
		if err != nil {
			c.metrics.RedirectCompletion("failed")
			c.report(ctx, input.SessionID, err)
		}
	}()

	round, err := c.takeRound(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if round.handshake == nil {
		if round.intent != nil || round.pending != nil {
			c.log(ctx).Warn("Discarding redirect state without a handshake",
				slog.Bool("intent", round.intent != nil),
				slog.Bool("pending", round.pending != nil),
			)
			if err := c.state.SetOngoingSignIn(ctx, input.SessionID, false); err != nil {
				return nil, err
			}
		}
		c.metrics.RedirectCompletion(string(usecase.CompletionNoOp))

		return &usecase.CompletionOutput{Kind: usecase.CompletionNoOp}, nil
	}

	session, err := c.state.Session(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	result, err := c.gateway.GetRedirectResult(ctx, session, round.handshake, input.Callback)
	if err != nil {
		output, err = c.handleResultError(ctx, round, err)
	} else if round.pending != nil {
		output, err = c.completePendingLink(ctx, round, result)
	} else {
		output, err = c.completeIntent(ctx, round, result)
	}
	if err != nil {
		return nil, err
	}

	c.metrics.RedirectCompletion(string(output.Kind))
	c.emitRound(ctx, round, service.LinkEventRedirectComplete, string(output.Kind))

	return output, nil
}

func (c *redirectCompletion) takeRound(ctx context.Context, sessionID string) (*redirectRound, error) {
	intent, err := c.state.TakeIntent(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	pending, err := c.state.TakePending(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	handshake, err := c.state.TakeHandshake(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &redirectRound{
		sessionID: sessionID,
		intent:    intent,
		pending:   pending,
		handshake: handshake,
	}, nil
}

func (c *redirectCompletion) handleResultError(ctx context.Context, round *redirectRound, resultErr error) (*usecase.CompletionOutput, error) {
	linkErr, ok := domainerrors.AsLinkingError(resultErr)
	if !ok {
		return nil, c.abort(ctx, round.sessionID, resultErr)
	}

	if round.pending != nil && !sameEmail(round.pending.Email, linkErr.Email) {
		c.emitRound(ctx, round, service.LinkEventEmailMismatch, linkErr.Email)

		return nil, c.abort(ctx, round.sessionID, errors.WithStack(domainerrors.ErrAccountEmailMismatch.WithDetails(
			fmt.Sprintf("expected %s, got %s", round.pending.Email, linkErr.Email))))
	}

	outcome, err := c.resolver.ResolveLink(ctx, round.sessionID, linkErr)
	if err != nil {
		return nil, c.abort(ctx, round.sessionID, err)
	}

	if outcome.Kind == usecase.LinkOutcomeRedirecting {
		return &usecase.CompletionOutput{Kind: usecase.CompletionRedirecting}, nil
	}
	if err := c.state.SetOngoingSignIn(ctx, round.sessionID, false); err != nil {
		return nil, err
	}

	return &usecase.CompletionOutput{Kind: usecase.CompletionLinked, User: outcome.User}, nil
}

// completePendingLink attaches the credential parked before the redirect to the account the user just proved.
func (c *redirectCompletion) completePendingLink(ctx context.Context, round *redirectRound, result *entity.AuthResult) (*usecase.CompletionOutput, error) {
	pending := round.pending

	if !sameEmail(pending.Email, result.User.Email) {
		c.emitRound(ctx, round, service.LinkEventEmailMismatch, result.User.Email)
		if result.IsNewUser {
			c.rollback(ctx, round, result.User.UID, "email_mismatch")
		}

		return nil, c.abort(ctx, round.sessionID, errors.WithStack(domainerrors.ErrAccountEmailMismatch.WithDetails(
			fmt.Sprintf("expected %s, got %s", pending.Email, result.User.Email))))
	}

	if err := c.state.SaveSession(ctx, round.sessionID, result.Session); err != nil {
		return nil, err
	}

	var linkErr error
	user := result.User
	if pending.Credential.Provider() == entity.ProviderPassword {
		password := pending.Password
		if password == "" {
			password = pending.Credential.Password
		}
		linkErr = c.gateway.UpdatePassword(ctx, result.Session, password)
	} else {
		var linked *entity.AuthResult
		linked, linkErr = c.gateway.LinkCredentialDirect(ctx, result.Session, pending.Credential)
		if linkErr == nil {
			user = linked.User
		}
	}

	switch {
	case errors.Is(linkErr, domainerrors.ErrInvalidIDPResponse):
		// The parked credential expired during the round trip; link the provider by redirect instead.
		return c.relinkByRedirect(ctx, round, result.Session, pending.Credential.Provider())
	case linkErr != nil:
		return nil, c.abort(ctx, round.sessionID, errors.Wrap(linkErr, "failed to attach pending credential"))
	}

	if err := c.state.SetOngoingSignIn(ctx, round.sessionID, false); err != nil {
		return nil, err
	}
	c.emitRound(ctx, round, service.LinkEventLinked, pending.Credential.Provider().String())
	c.info(ctx, round.sessionID, fmt.Sprintf("%s is now linked to your account.", pending.Credential.Provider()))

	return &usecase.CompletionOutput{Kind: usecase.CompletionLinked, User: user}, nil
}

func (c *redirectCompletion) relinkByRedirect(ctx context.Context, round *redirectRound, session *entity.AuthSession, provider entity.Provider) (*usecase.CompletionOutput, error) {
	handshake, err := c.gateway.LinkCredentialWithRedirect(ctx, session, provider)
	if err != nil {
		return nil, c.abort(ctx, round.sessionID, err)
	}

	if err := c.state.SetOngoingSignIn(ctx, round.sessionID, true); err != nil {
		return nil, err
	}
	if err := c.state.WriteIntent(ctx, round.sessionID, &entity.RedirectIntent{Action: entity.AuthActionAddLink, Provider: provider}); err != nil {
		return nil, err
	}
	if err := c.state.WriteHandshake(ctx, round.sessionID, handshake); err != nil {
		return nil, err
	}
	if err := c.navigator.Navigate(ctx, handshake.AuthURL); err != nil {
		return nil, errors.Wrap(err, "failed to navigate to provider")
	}

	return &usecase.CompletionOutput{Kind: usecase.CompletionRedirecting}, nil
}

func (c *redirectCompletion) completeIntent(ctx context.Context, round *redirectRound, result *entity.AuthResult) (*usecase.CompletionOutput, error) {
	sessionID := round.sessionID
	used := entity.ToProvider(result.ProviderID)
	if round.intent != nil && result.ProviderID == "" {
		used = round.intent.Provider
	}

	kind := usecase.CompletionSignedIn
	if round.intent != nil {
		switch round.intent.Action {
		case entity.AuthActionSignUp:
			if !result.IsNewUser {
				return nil, c.abort(ctx, sessionID, errors.Wrap(domainerrors.ErrEmailAlreadyInUse, "sign-up redirect returned an existing account"))
			}
			if reserved, ok := c.reservedProvider(result.User.Email); ok && reserved != used {
				c.rollback(ctx, round, result.User.UID, "reserved_domain")

				return nil, c.abort(ctx, sessionID, errors.WithStack(domainerrors.ErrReservedEmailDomain.WithDetails(
					fmt.Sprintf("%s addresses must sign up with %s", result.User.Email, reserved))))
			}
		case entity.AuthActionSignIn:
			if result.IsNewUser {
				c.rollback(ctx, round, result.User.UID, "unintended_sign_up")

				return nil, c.abort(ctx, sessionID, errors.Wrap(domainerrors.ErrUserNotFound, "sign-in redirect created a new account"))
			}
		case entity.AuthActionAddLink:
			kind = usecase.CompletionLinked
			c.info(ctx, sessionID, fmt.Sprintf("%s is now linked to your account.", round.intent.Provider))
		}
	}

	if err := c.state.SaveSession(ctx, sessionID, result.Session); err != nil {
		return nil, err
	}
	if err := c.state.SetOngoingSignIn(ctx, sessionID, false); err != nil {
		return nil, err
	}

	return &usecase.CompletionOutput{Kind: kind, User: result.User, IsNewUser: result.IsNewUser}, nil
}

func (c *redirectCompletion) reservedProvider(email string) (entity.Provider, bool) {
	if !c.enforceDomains || c.policy == nil {
		return "", false
	}

	return c.policy.ReservedProvider(email)
}

// rollback deletes an account the flow created by accident. A failed delete is logged, not returned.
func (c *redirectCompletion) rollback(ctx context.Context, round *redirectRound, uid, reason string) {
	c.metrics.Rollback(reason)
	c.emitRound(ctx, round, service.LinkEventRolledBack, reason)

	if err := c.gateway.DeleteUser(ctx, uid); err != nil {
		c.log(ctx).Error("Failed to delete unintended account",
			slog.String("uid", uid),
			slog.String("reason", reason),
			slog.Any("error", err),
		)
	}
}

// abort forces a sign-out and returns cause.
func (c *redirectCompletion) abort(ctx context.Context, sessionID string, cause error) error {
	if err := forceSignOut(ctx, c.gateway, c.state, sessionID); err != nil {
		c.log(ctx).Error("Failed to force sign-out", slog.Any("error", err))
	}

	return cause
}

func (c *redirectCompletion) emitRound(ctx context.Context, round *redirectRound, eventType service.LinkEventType, detail string) {
	event := &service.LinkEvent{
		CorrelationID: round.correlationID(),
		SessionID:     round.sessionID,
		Type:          eventType,
		Detail:        detail,
	}
	if round.pending != nil {
		event.Email = round.pending.Email
		event.Provider = round.pending.Credential.Provider().String()
	} else if round.intent != nil {
		event.Provider = round.intent.Provider.String()
	}

	c.emit(ctx, event)
}
