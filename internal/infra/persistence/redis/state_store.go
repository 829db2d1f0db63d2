// Package redis implements the redirect state store on Redis.
package redis

import (
	"context"
	"strings"
	"time"

	"firelink/internal/domain/repository"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const purgeScanCount = 64

// stateStore keeps each state key of a session under "<prefix>:<sessionID>:<key>".
// Every write refreshes the key's TTL.
type stateStore struct {
	client goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewStateStore creates a Redis-backed redirect state store.
func NewStateStore(client goredis.UniversalClient, prefix string, ttl time.Duration) repository.RedirectStateStore {
	return &stateStore{
		client: client,
		prefix: strings.TrimSuffix(prefix, ":"),
		ttl:    ttl,
	}
}

func (s *stateStore) key(sessionID string, key repository.StateKey) string {
	return s.prefix + ":" + sessionID + ":" + string(key)
}

func (s *stateStore) Get(ctx context.Context, sessionID string, key repository.StateKey) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(sessionID, key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrStateNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s", key)
	}

	return value, nil
}

func (s *stateStore) Set(ctx context.Context, sessionID string, key repository.StateKey, value []byte) error {
	return errors.Wrapf(s.client.Set(ctx, s.key(sessionID, key), value, s.ttl).Err(), "failed to set %s", key)
}

func (s *stateStore) Take(ctx context.Context, sessionID string, key repository.StateKey) ([]byte, error) {
	value, err := s.client.GetDel(ctx, s.key(sessionID, key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrStateNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to take %s", key)
	}

	return value, nil
}

func (s *stateStore) Delete(ctx context.Context, sessionID string, keys ...repository.StateKey) error {
	if len(keys) == 0 {
		return nil
	}

	redisKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		redisKeys = append(redisKeys, s.key(sessionID, key))
	}

	return errors.Wrap(s.client.Del(ctx, redisKeys...).Err(), "failed to delete state")
}

func (s *stateStore) Append(ctx context.Context, sessionID string, key repository.StateKey, value []byte) error {
	redisKey := s.key(sessionID, key)

	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.RPush(ctx, redisKey, value)
		if s.ttl > 0 {
			pipe.Expire(ctx, redisKey, s.ttl)
		}

		return nil
	})

	return errors.Wrapf(err, "failed to append to %s", key)
}

func (s *stateStore) Drain(ctx context.Context, sessionID string, key repository.StateKey) ([][]byte, error) {
	redisKey := s.key(sessionID, key)

	var values *goredis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		values = pipe.LRange(ctx, redisKey, 0, -1)
		pipe.Del(ctx, redisKey)

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to drain %s", key)
	}

	result := make([][]byte, 0, len(values.Val()))
	for _, value := range values.Val() {
		result = append(result, []byte(value))
	}

	return result, nil
}

func (s *stateStore) Purge(ctx context.Context, sessionID string) error {
	pattern := s.prefix + ":" + sessionID + ":*"

	iter := s.client.Scan(ctx, 0, pattern, purgeScanCount).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan session state")
	}
	if len(keys) == 0 {
		return nil
	}

	return errors.Wrap(s.client.Del(ctx, keys...).Err(), "failed to purge session state")
}
