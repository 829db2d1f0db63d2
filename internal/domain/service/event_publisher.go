package service

import (
	"context"
	"time"
)

// LinkEventType names one step of a linking flow.
type LinkEventType string

const (
	LinkEventAttemptStarted   LinkEventType = "attempt_started"
	LinkEventAlreadyInUse     LinkEventType = "already_in_use"
	LinkEventPromptShown      LinkEventType = "prompt_shown"
	LinkEventPasswordFailed   LinkEventType = "password_failed"
	LinkEventRetryExhausted   LinkEventType = "retry_exhausted"
	LinkEventRedirectStarted  LinkEventType = "redirect_started"
	LinkEventLinked           LinkEventType = "linked"
	LinkEventCancelled        LinkEventType = "cancelled"
	LinkEventFailed           LinkEventType = "failed"
	LinkEventRolledBack       LinkEventType = "rolled_back"
	LinkEventEmailMismatch    LinkEventType = "email_mismatch"
	LinkEventRedirectComplete LinkEventType = "redirect_completed"
)

// LinkEvent is the structured record of one linking step.
type LinkEvent struct {
	RequestID     string        `json:"request_id,omitempty"` // For distributed tracing
	CorrelationID string        `json:"correlation_id"`
	SessionID     string        `json:"session_id"`
	Type          LinkEventType `json:"type"`
	Email         string        `json:"email,omitempty"`
	Provider      string        `json:"provider,omitempty"`
	Attempt       int           `json:"attempt,omitempty"`
	Detail        string        `json:"detail,omitempty"`
	OccurredAt    time.Time     `json:"occurred_at"`
}

// LinkEventPublisher defines the interface for publishing link events to a message queue
type LinkEventPublisher interface {
	// PublishLinkEvent publishes one linking step
	PublishLinkEvent(ctx context.Context, event *LinkEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
