package session

import (
	"context"
	"time"

	"github.com/jrsteele09/go-sso-relay/internal/errors"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis with a per-key TTL, which lets several
// relay instances share one session space.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	sealer *Sealer
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client redis.UniversalClient, opts ...StoreOption) *RedisStore {
	o := newStoreOptions(opts)
	return &RedisStore{
		client: client,
		prefix: o.keyPrefix,
		sealer: o.sealer,
	}
}

// OpenRedisStore connects to addr and checks the connection before returning.
func OpenRedisStore(ctx context.Context, addr, password string, db int, opts ...StoreOption) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:       addr,
		Password:   password,
		DB:         db,
		MaxRetries: 3,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "[session OpenRedisStore] failed to reach redis at %s", addr)
	}
	return NewRedisStore(client, opts...), nil
}

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

func (r *RedisStore) Upsert(ctx context.Context, session Session, ttl time.Duration) error {
	if session.ID == "" {
		return errors.New("session ID is required")
	}
	payload, err := encodeSession(session, r.sealer)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(session.ID), payload, ttl).Err(); err != nil {
		return errors.Wrapf(err, "[RedisStore Upsert] failed to write session")
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, errors.New("session ID is required")
	}
	payload, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, errors.ErrSessionNotFound
	}
	if err != nil {
		return Session{}, errors.Wrapf(err, "[RedisStore Get] failed to read session")
	}
	return decodeSession(payload, r.sealer)
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("session ID is required")
	}
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return errors.Wrapf(err, "[RedisStore Delete] failed to delete session")
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
