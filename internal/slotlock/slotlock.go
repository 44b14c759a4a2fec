package slotlock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// Locker serialises booking attempts on a single slot. It is advisory:
// the database exclusion constraint stays authoritative, the lock only
// keeps concurrent requests for the same slot from racing to the same
// transaction.
type Locker interface {
	Acquire(ctx context.Context, slotStart time.Time) (release func(), ok bool)
}

// Key is the canonical lock key for a slot: one key per (day, start).
func Key(slotStart time.Time) string {
	return fmt.Sprintf("slotlock:%s", slotStart.UTC().Format("2006-01-02T15:04"))
}

// RedisLocker implements Locker with SET NX + TTL, so a crashed holder
// cannot wedge a slot for longer than the TTL.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisLocker(addr string) *RedisLocker {
	return &RedisLocker{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    10 * time.Second,
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, slotStart time.Time) (func(), bool) {
	key := Key(slotStart)

	ok, err := l.client.SetNX(ctx, key, 1, l.ttl).Result()
	if err != nil {
		// Redis being down must not take bookings down with it.
		log.Warn().Err(err).Str("key", key).Msg("slot lock unavailable, proceeding without it")
		return func() {}, true
	}
	if !ok {
		return nil, false
	}

	return func() {
		if err := l.client.Del(context.Background(), key).Err(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to release slot lock")
		}
	}, true
}

// NopLocker is used when Redis is not configured.
type NopLocker struct{}

func (NopLocker) Acquire(ctx context.Context, slotStart time.Time) (func(), bool) {
	return func() {}, true
}
