package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"firelink/internal/domain/entity"
	"firelink/internal/domain/service"
	"firelink/internal/infra/persistence/memory"
)

// plainSealer leaves values readable so tests can inspect the store.
type plainSealer struct{}

func (plainSealer) Seal(_ context.Context, plaintext []byte) ([]byte, error) {
	return plaintext, nil
}

func (plainSealer) Open(_ context.Context, ciphertext []byte) ([]byte, error) {
	return ciphertext, nil
}

// recordingPublisher keeps every published link event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.LinkEvent
}

func (p *recordingPublisher) PublishLinkEvent(_ context.Context, event *service.LinkEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) types() []service.LinkEventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]service.LinkEventType, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.Type)
	}

	return types
}

// recordingMetrics keeps every measurement.
type recordingMetrics struct {
	mu          sync.Mutex
	outcomes    []string
	attempts    []int
	completions []string
	rollbacks   []string
}

func (m *recordingMetrics) LinkOutcome(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func (m *recordingMetrics) PasswordAttempts(attempts int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, attempts)
}

func (m *recordingMetrics) RedirectCompletion(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completions = append(m.completions, outcome)
}

func (m *recordingMetrics) Rollback(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollbacks = append(m.rollbacks, reason)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestRedirectState(t *testing.T) *RedirectState {
	t.Helper()

	return NewRedirectState(RedirectStateParams{
		Store:  memory.NewStateStore(0),
		Sealer: plainSealer{},
	})
}

func testUser(uid, email string, providerIDs ...string) *entity.AuthenticatedUser {
	user := &entity.AuthenticatedUser{UID: uid, Email: email, EmailVerified: true}
	for _, id := range providerIDs {
		user.ProviderData = append(user.ProviderData, entity.ProviderInfo{ProviderID: id, UID: uid + "-" + id})
	}

	return user
}

func testSession(uid, email string) *entity.AuthSession {
	return &entity.AuthSession{UID: uid, Email: email, IDToken: "id-" + uid, RefreshToken: "refresh-" + uid}
}

func githubCredential(email string) *entity.Credential {
	return &entity.Credential{
		ProviderID:   entity.ProviderIDGitHub,
		SignInMethod: entity.ProviderIDGitHub,
		AccessToken:  "gh-access",
		Email:        email,
	}
}
