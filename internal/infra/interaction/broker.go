// Package interaction runs user-facing flows in the background and bridges their prompts and
// navigations to the HTTP requests that drive them.
package interaction

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"firelink/config"
	deliverycontext "firelink/internal/delivery/context"
	"firelink/internal/domain/entity"
	domainerrors "firelink/internal/domain/errors"
	"firelink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultFlowTTL = 10 * time.Minute

// EventKind tells the HTTP layer what a flow is waiting for.
type EventKind string

const (
	// EventPrompt means the flow waits for a provider selection.
	EventPrompt EventKind = "prompt"
	// EventRedirect means the flow sent the user agent to URL and ended.
	EventRedirect EventKind = "redirect"
	// EventDone means the flow returned.
	EventDone EventKind = "done"
)

// Event is the next thing a flow needs from its driver.
type Event struct {
	Kind    EventKind
	Choice  *entity.ProviderChoice
	Message string
	URL     string
	Result  any
	Err     error
}

// RunFunc is the body of a flow.
type RunFunc func(ctx context.Context) (any, error)

type answer struct {
	selection *entity.ProviderSelection
	cancelled bool
}

// Flow is one running use case bound to a session.
type Flow struct {
	ID        string
	SessionID string

	events  chan Event
	answers chan answer
	done    chan struct{}
	cancel  context.CancelFunc

	mu        sync.Mutex
	prompt    *Event
	awaiting  bool
	navigated bool
}

// Next waits for the flow's next event.
func (f *Flow) Next(ctx context.Context) (Event, error) {
	select {
	case ev := <-f.events:
		return ev, nil
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case <-f.done:
		select {
		case ev := <-f.events:
			return ev, nil
		default:
			return Event{Kind: EventDone}, nil
		}
	}
}

// Done is closed once the flow has returned.
func (f *Flow) Done() <-chan struct{} {
	return f.done
}

func (f *Flow) emit(ctx context.Context, ev Event) error {
	select {
	case f.events <- ev:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "flow abandoned")
	}
}

type flowKey struct{}

func flowFrom(ctx context.Context) (*Flow, bool) {
	f, ok := ctx.Value(flowKey{}).(*Flow)

	return f, ok
}

// BrokerParams holds dependencies for the broker, injected by Fx.
type BrokerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Broker owns at most one flow per session.
type Broker struct {
	mu     sync.Mutex
	flows  map[string]*Flow
	ttl    time.Duration
	logger *slog.Logger
}

var (
	_ service.Prompter  = (*Broker)(nil)
	_ service.Navigator = (*Broker)(nil)
)

// New creates the broker and cancels every running flow on shutdown.
func New(params BrokerParams) *Broker {
	ttl := defaultFlowTTL
	if params.Config != nil && params.Config.Link != nil && params.Config.Link.FlowTTL > 0 {
		ttl = params.Config.Link.FlowTTL
	}

	b := NewBroker(ttl, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			b.Shutdown()

			return nil
		},
	})

	return b
}

// NewBroker creates a broker whose flows end after ttl.
func NewBroker(ttl time.Duration, logger *slog.Logger) *Broker {
	return &Broker{
		flows:  make(map[string]*Flow),
		ttl:    ttl,
		logger: logger,
	}
}

// Start runs fn as the session's flow, cancelling the session's previous flow. The flow keeps
// the values of ctx but not its cancellation.
func (b *Broker) Start(ctx context.Context, sessionID string, fn RunFunc) *Flow {
	flowCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.ttl)
	flow := &Flow{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		events:    make(chan Event, 1),
		answers:   make(chan answer, 1),
		done:      make(chan struct{}),
		cancel:    cancel,
	}
	flowCtx = context.WithValue(flowCtx, flowKey{}, flow)

	b.mu.Lock()
	previous := b.flows[sessionID]
	b.flows[sessionID] = flow
	b.mu.Unlock()

	log := deliverycontext.GetLoggerOrDefault(ctx, b.logger)
	if previous != nil {
		log.Info("Superseding running flow", slog.String("flow_id", previous.ID))
		previous.cancel()
	}

	go func() {
		defer close(flow.done)
		defer cancel()
		defer b.release(flow)

		result, err := fn(flowCtx)

		flow.mu.Lock()
		navigated := flow.navigated
		flow.mu.Unlock()
		if navigated {
			return
		}
		if emitErr := flow.emit(flowCtx, Event{Kind: EventDone, Result: result, Err: err}); emitErr != nil {
			log.Warn("Flow finished without a listener", slog.String("flow_id", flow.ID), slog.Any("error", emitErr))
		}
	}()

	return flow
}

func (b *Broker) release(flow *Flow) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.flows[flow.SessionID] == flow {
		delete(b.flows, flow.SessionID)
	}
}

// Lookup returns the session's running flow.
func (b *Broker) Lookup(sessionID string) (*Flow, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	flow, ok := b.flows[sessionID]

	return flow, ok
}

// CurrentPrompt returns the prompt the session's flow is waiting on.
func (b *Broker) CurrentPrompt(sessionID string) (*Event, bool) {
	flow, ok := b.Lookup(sessionID)
	if !ok {
		return nil, false
	}

	flow.mu.Lock()
	defer flow.mu.Unlock()
	if !flow.awaiting || flow.prompt == nil {
		return nil, false
	}
	ev := *flow.prompt

	return &ev, true
}

// Answer delivers the user's selection to the session's waiting flow.
func (b *Broker) Answer(sessionID string, selection *entity.ProviderSelection) (*Flow, error) {
	return b.deliver(sessionID, answer{selection: selection})
}

// Cancel tells the session's waiting flow that the user dismissed the prompt.
func (b *Broker) Cancel(sessionID string) (*Flow, error) {
	return b.deliver(sessionID, answer{cancelled: true})
}

func (b *Broker) deliver(sessionID string, a answer) (*Flow, error) {
	flow, ok := b.Lookup(sessionID)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNoActiveFlow)
	}

	flow.mu.Lock()
	defer flow.mu.Unlock()
	if !flow.awaiting {
		return nil, errors.WithStack(domainerrors.ErrNoActiveFlow.WithDetails("the flow is not waiting for an answer"))
	}
	select {
	case flow.answers <- a:
		flow.awaiting = false
	default:
		return nil, errors.WithStack(domainerrors.ErrNoActiveFlow.WithDetails("an answer is already pending"))
	}

	return flow, nil
}

// Prompt publishes choice to the flow's driver and blocks until a valid answer or a cancel arrives.
func (b *Broker) Prompt(ctx context.Context, choice *entity.ProviderChoice, validate service.SelectionValidator) (*entity.ProviderSelection, error) {
	flow, ok := flowFrom(ctx)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNoActiveFlow.WithDetails("prompt outside of a flow"))
	}

	message := ""
	for {
		ev := Event{Kind: EventPrompt, Choice: choice, Message: message}
		flow.mu.Lock()
		flow.prompt = &ev
		flow.awaiting = true
		flow.mu.Unlock()

		if err := flow.emit(ctx, ev); err != nil {
			return nil, err
		}

		var a answer
		select {
		case a = <-flow.answers:
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "prompt abandoned")
		}
		if a.cancelled {
			return nil, nil
		}
		if validate == nil {
			return a.selection, nil
		}
		if err := validate(a.selection); err != nil {
			message = rejectionMessage(err)

			continue
		}

		return a.selection, nil
	}
}

// Navigate hands url to the flow's driver. The flow ends its interaction with the user here.
func (b *Broker) Navigate(ctx context.Context, url string) error {
	flow, ok := flowFrom(ctx)
	if !ok {
		return errors.WithStack(domainerrors.ErrNoActiveFlow.WithDetails("navigation outside of a flow"))
	}

	flow.mu.Lock()
	flow.navigated = true
	flow.awaiting = false
	flow.mu.Unlock()

	return flow.emit(ctx, Event{Kind: EventRedirect, URL: url})
}

// Shutdown cancels every running flow.
func (b *Broker) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sessionID, flow := range b.flows {
		flow.cancel()
		delete(b.flows, sessionID)
	}
}

func rejectionMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if details := appErr.Details(); details != "" {
			return details
		}

		return appErr.Message()
	}

	return err.Error()
}
