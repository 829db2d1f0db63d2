// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"strconv"

	"firelink/internal/domain/entity"
	"firelink/internal/domain/repository"
	"firelink/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RedirectStateParams holds dependencies for RedirectState, injected by Fx.
type RedirectStateParams struct {
	fx.In

	Store  repository.RedirectStateStore
	Sealer service.Sealer
}

// RedirectState is the typed view of one session's redirect state. Pending credentials and
// sessions carry tokens, so they are sealed before they reach the store.
type RedirectState struct {
	store  repository.RedirectStateStore
	sealer service.Sealer
}

// NewRedirectState is the constructor for RedirectState.
func NewRedirectState(params RedirectStateParams) *RedirectState {
	return &RedirectState{
		store:  params.Store,
		sealer: params.Sealer,
	}
}

// WritePending stores the pending credential, replacing any previous one.
func (s *RedirectState) WritePending(ctx context.Context, sessionID string, pending *entity.PendingCredential) error {
	return s.writeSealed(ctx, sessionID, repository.StateKeyPendingCredential, pending)
}

// TakePending reads and clears the pending credential. It returns nil when none is stored.
func (s *RedirectState) TakePending(ctx context.Context, sessionID string) (*entity.PendingCredential, error) {
	var pending entity.PendingCredential
	found, err := s.takeSealed(ctx, sessionID, repository.StateKeyPendingCredential, &pending)
	if err != nil || !found {
		return nil, err
	}

	return &pending, nil
}

// HasPending reports whether a pending credential is stored.
func (s *RedirectState) HasPending(ctx context.Context, sessionID string) (bool, error) {
	_, err := s.store.Get(ctx, sessionID, repository.StateKeyPendingCredential)
	if errors.Is(err, repository.ErrStateNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read pending credential")
	}

	return true, nil
}

// WriteIntent stores the redirect intent, replacing any previous one.
func (s *RedirectState) WriteIntent(ctx context.Context, sessionID string, intent *entity.RedirectIntent) error {
	return s.writeJSON(ctx, sessionID, repository.StateKeyRedirectIntent, intent)
}

// TakeIntent reads and clears the redirect intent. It returns nil when none is stored.
func (s *RedirectState) TakeIntent(ctx context.Context, sessionID string) (*entity.RedirectIntent, error) {
	var intent entity.RedirectIntent
	found, err := s.takeJSON(ctx, sessionID, repository.StateKeyRedirectIntent, &intent)
	if err != nil || !found {
		return nil, err
	}

	return &intent, nil
}

// WriteHandshake stores the handshake of the redirect about to start.
func (s *RedirectState) WriteHandshake(ctx context.Context, sessionID string, handshake *entity.ProviderHandshake) error {
	return s.writeSealed(ctx, sessionID, repository.StateKeyProviderHandshake, handshake)
}

// TakeHandshake reads and clears the handshake. It returns nil when none is stored.
func (s *RedirectState) TakeHandshake(ctx context.Context, sessionID string) (*entity.ProviderHandshake, error) {
	var handshake entity.ProviderHandshake
	found, err := s.takeSealed(ctx, sessionID, repository.StateKeyProviderHandshake, &handshake)
	if err != nil || !found {
		return nil, err
	}

	return &handshake, nil
}

// ClearPending removes everything a redirect round trip carries.
func (s *RedirectState) ClearPending(ctx context.Context, sessionID string) error {
	err := s.store.Delete(ctx, sessionID,
		repository.StateKeyPendingCredential,
		repository.StateKeyRedirectIntent,
		repository.StateKeyProviderHandshake,
	)

	return errors.Wrap(err, "failed to clear pending redirect state")
}

// Flags returns the guard flags; absent flags are false.
func (s *RedirectState) Flags(ctx context.Context, sessionID string) (entity.SessionFlags, error) {
	forceSignOut, err := s.readBool(ctx, sessionID, repository.StateKeyForceSignOut)
	if err != nil {
		return entity.SessionFlags{}, err
	}
	ongoingSignIn, err := s.readBool(ctx, sessionID, repository.StateKeyOngoingSignIn)
	if err != nil {
		return entity.SessionFlags{}, err
	}

	return entity.SessionFlags{ForceSignOut: forceSignOut, OngoingSignIn: ongoingSignIn}, nil
}

// SaveFlags persists flags. Setting ForceSignOut always clears OngoingSignIn.
func (s *RedirectState) SaveFlags(ctx context.Context, sessionID string, flags entity.SessionFlags) error {
	if flags.ForceSignOut {
		flags.OngoingSignIn = false
	}
	if err := s.writeBool(ctx, sessionID, repository.StateKeyForceSignOut, flags.ForceSignOut); err != nil {
		return err
	}

	return s.writeBool(ctx, sessionID, repository.StateKeyOngoingSignIn, flags.OngoingSignIn)
}

// SetOngoingSignIn toggles the ongoing sign-in flag alone.
func (s *RedirectState) SetOngoingSignIn(ctx context.Context, sessionID string, ongoing bool) error {
	return s.writeBool(ctx, sessionID, repository.StateKeyOngoingSignIn, ongoing)
}

// MarkForceSignOut raises ForceSignOut, clears OngoingSignIn and drops the pending redirect state.
func (s *RedirectState) MarkForceSignOut(ctx context.Context, sessionID string) error {
	if err := s.SaveFlags(ctx, sessionID, entity.SessionFlags{ForceSignOut: true}); err != nil {
		return err
	}

	return s.ClearPending(ctx, sessionID)
}

// Session returns the stored session, or nil when signed out.
func (s *RedirectState) Session(ctx context.Context, sessionID string) (*entity.AuthSession, error) {
	raw, err := s.store.Get(ctx, sessionID, repository.StateKeySession)
	if errors.Is(err, repository.ErrStateNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}

	var session entity.AuthSession
	if err := s.open(ctx, raw, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// SaveSession stores the signed-in session.
func (s *RedirectState) SaveSession(ctx context.Context, sessionID string, session *entity.AuthSession) error {
	if session == nil {
		return errors.New("session must not be nil")
	}

	return s.writeSealed(ctx, sessionID, repository.StateKeySession, session)
}

// ClearSession drops the signed-in session.
func (s *RedirectState) ClearSession(ctx context.Context, sessionID string) error {
	return errors.Wrap(s.store.Delete(ctx, sessionID, repository.StateKeySession), "failed to clear session")
}

// Purge removes every piece of state of the session.
func (s *RedirectState) Purge(ctx context.Context, sessionID string) error {
	return errors.Wrap(s.store.Purge(ctx, sessionID), "failed to purge session state")
}

func (s *RedirectState) writeJSON(ctx context.Context, sessionID string, key repository.StateKey, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}
	if err := s.store.Set(ctx, sessionID, key, data); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

func (s *RedirectState) takeJSON(ctx context.Context, sessionID string, key repository.StateKey, out any) (bool, error) {
	raw, err := s.store.Take(ctx, sessionID, key)
	if errors.Is(err, repository.ErrStateNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to take %s", key)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, errors.Wrapf(err, "failed to decode %s", key)
	}

	return true, nil
}

func (s *RedirectState) writeSealed(ctx context.Context, sessionID string, key repository.StateKey, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", key)
	}
	sealed, err := s.sealer.Seal(ctx, data)
	if err != nil {
		return errors.Wrapf(err, "failed to seal %s", key)
	}
	if err := s.store.Set(ctx, sessionID, key, sealed); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

func (s *RedirectState) takeSealed(ctx context.Context, sessionID string, key repository.StateKey, out any) (bool, error) {
	raw, err := s.store.Take(ctx, sessionID, key)
	if errors.Is(err, repository.ErrStateNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to take %s", key)
	}
	if err := s.open(ctx, raw, out); err != nil {
		return false, err
	}

	return true, nil
}

func (s *RedirectState) open(ctx context.Context, raw []byte, out any) error {
	data, err := s.sealer.Open(ctx, raw)
	if err != nil {
		return errors.Wrap(err, "failed to open sealed state")
	}

	return errors.Wrap(json.Unmarshal(data, out), "failed to decode sealed state")
}

func (s *RedirectState) readBool(ctx context.Context, sessionID string, key repository.StateKey) (bool, error) {
	raw, err := s.store.Get(ctx, sessionID, key)
	if errors.Is(err, repository.ErrStateNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", key)
	}
	value, err := strconv.ParseBool(string(raw))
	if err != nil {
		return false, errors.Wrapf(err, "failed to decode %s", key)
	}

	return value, nil
}

func (s *RedirectState) writeBool(ctx context.Context, sessionID string, key repository.StateKey, value bool) error {
	if !value {
		return errors.Wrapf(s.store.Delete(ctx, sessionID, key), "failed to clear %s", key)
	}

	return errors.Wrapf(s.store.Set(ctx, sessionID, key, []byte(strconv.FormatBool(value))), "failed to write %s", key)
}
