// Package redis caches the public event view, keyed by slug.
//
// Each slug also has a version counter. DeleteEvent bumps it, and SetEvent
// only writes when the counter still matches the version read before the
// event was loaded, so a slow reader cannot put back an event that was
// invalidated in the meantime.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"meetup/internal/models"
	"meetup/internal/storage"
)

const (
	eventKeyPrefix   = "event:slug:"
	versionKeyPrefix = "event:version:"

	versionTTL = 24 * time.Hour
)

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(ctx context.Context, url string, ttl time.Duration) (*Cache, error) {
	const op = "storage.redis.New"

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Cache{rdb: rdb, ttl: ttl}, nil
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}

func eventKey(slug string) string {
	return eventKeyPrefix + slug
}

func versionKey(slug string) string {
	return versionKeyPrefix + slug
}

// Version returns the invalidation counter for slug. Read it before loading
// the event from the store and pass it to SetEvent.
func (c *Cache) Version(ctx context.Context, slug string) (int64, error) {
	const op = "storage.redis.Version"

	v, err := c.rdb.Get(ctx, versionKey(slug)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return v, nil
}

// Event returns the cached event or storage.ErrCacheMiss.
func (c *Cache) Event(ctx context.Context, slug string) (*models.Event, error) {
	const op = "storage.redis.Event"

	b, err := c.rdb.Get(ctx, eventKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrCacheMiss
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var event models.Event
	if err := json.Unmarshal(b, &event); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &event, nil
}

// SetEvent stores event unless its slug was invalidated after version was
// read, in which case it returns storage.ErrCacheStale.
func (c *Cache) SetEvent(ctx context.Context, event *models.Event, version int64) error {
	const op = "storage.redis.SetEvent"

	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	vKey := versionKey(event.Slug)

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, vKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != version {
			return storage.ErrCacheStale
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, eventKey(event.Slug), b, c.ttl)
			return nil
		})
		return err
	}, vKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrCacheStale), errors.Is(err, redis.TxFailedErr):
		return fmt.Errorf("%s: %w", op, storage.ErrCacheStale)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// DeleteEvent drops the cached event and bumps the slug version.
func (c *Cache) DeleteEvent(ctx context.Context, slug string) error {
	const op = "storage.redis.DeleteEvent"

	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey(slug))
		pipe.Expire(ctx, versionKey(slug), versionTTL)
		pipe.Del(ctx, eventKey(slug))
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
