// Package memory implements an in-process redirect state store for development and tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"firelink/internal/domain/repository"
)

type entry struct {
	value     []byte
	list      [][]byte
	expiresAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// stateStore keeps every session's state in a map guarded by one mutex.
type stateStore struct {
	mu       sync.Mutex
	sessions map[string]map[repository.StateKey]*entry
	ttl      time.Duration
	now      func() time.Time
}

// NewStateStore creates an in-memory redirect state store. A zero ttl keeps values forever.
func NewStateStore(ttl time.Duration) repository.RedirectStateStore {
	return &stateStore{
		sessions: make(map[string]map[repository.StateKey]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *stateStore) expiry() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}

	return s.now().Add(s.ttl)
}

// lookup returns the live entry under key. Callers hold s.mu.
func (s *stateStore) lookup(sessionID string, key repository.StateKey) (*entry, bool) {
	keys, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	e, ok := keys[key]
	if !ok {
		return nil, false
	}
	if e.expired(s.now()) {
		s.remove(sessionID, key)

		return nil, false
	}

	return e, true
}

// remove deletes key and drops the session once it is empty. Callers hold s.mu.
func (s *stateStore) remove(sessionID string, key repository.StateKey) {
	keys, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	delete(keys, key)
	if len(keys) == 0 {
		delete(s.sessions, sessionID)
	}
}

func (s *stateStore) put(sessionID string, key repository.StateKey, e *entry) {
	keys, ok := s.sessions[sessionID]
	if !ok {
		keys = make(map[repository.StateKey]*entry)
		s.sessions[sessionID] = keys
	}
	keys[key] = e
}

func (s *stateStore) Get(_ context.Context, sessionID string, key repository.StateKey) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(sessionID, key)
	if !ok || e.value == nil {
		return nil, repository.ErrStateNotFound
	}

	return slices.Clone(e.value), nil
}

func (s *stateStore) Set(_ context.Context, sessionID string, key repository.StateKey, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := slices.Clone(value)
	if stored == nil {
		stored = []byte{}
	}
	s.put(sessionID, key, &entry{value: stored, expiresAt: s.expiry()})

	return nil
}

func (s *stateStore) Take(_ context.Context, sessionID string, key repository.StateKey) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(sessionID, key)
	if !ok || e.value == nil {
		return nil, repository.ErrStateNotFound
	}
	s.remove(sessionID, key)

	return e.value, nil
}

func (s *stateStore) Delete(_ context.Context, sessionID string, keys ...repository.StateKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		s.remove(sessionID, key)
	}

	return nil
}

func (s *stateStore) Append(_ context.Context, sessionID string, key repository.StateKey, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(sessionID, key)
	if !ok {
		e = &entry{}
		s.put(sessionID, key, e)
	}
	e.list = append(e.list, slices.Clone(value))
	e.expiresAt = s.expiry()

	return nil
}

func (s *stateStore) Drain(_ context.Context, sessionID string, key repository.StateKey) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(sessionID, key)
	if !ok {
		return [][]byte{}, nil
	}
	s.remove(sessionID, key)

	return e.list, nil
}

func (s *stateStore) Purge(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)

	return nil
}
