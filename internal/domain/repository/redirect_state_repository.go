// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrStateNotFound is returned when a session has no value under the requested key.
var ErrStateNotFound = errors.New("redirect state not found")

// StateKey names one logical slot of the per-session redirect state.
type StateKey string

const (
	StateKeyPendingCredential StateKey = "pending-credential"
	StateKeyRedirectIntent    StateKey = "redirect-intent"
	StateKeyForceSignOut      StateKey = "force-sign-out"
	StateKeyOngoingSignIn     StateKey = "ongoing-sign-in"
	StateKeyProviderHandshake StateKey = "provider-handshake"
	StateKeySession           StateKey = "session"
	StateKeyNotices           StateKey = "notices"
)

// RedirectStateStore is the durable per-session key/value area that survives a provider redirect.
// Values are opaque bytes; writing an existing key replaces it.
type RedirectStateStore interface {
	// Get returns the value stored under key, or ErrStateNotFound.
	Get(ctx context.Context, sessionID string, key StateKey) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, sessionID string, key StateKey, value []byte) error

	// Take atomically reads and deletes the value under key, or returns ErrStateNotFound.
	Take(ctx context.Context, sessionID string, key StateKey) ([]byte, error)

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, sessionID string, keys ...StateKey) error

	// Append adds value to the list stored under key.
	Append(ctx context.Context, sessionID string, key StateKey, value []byte) error

	// Drain atomically returns and removes every value of the list stored under key.
	Drain(ctx context.Context, sessionID string, key StateKey) ([][]byte, error)

	// Purge removes every key of the session.
	Purge(ctx context.Context, sessionID string) error
}
