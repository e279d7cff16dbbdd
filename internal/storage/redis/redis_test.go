package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetup/internal/models"
	"meetup/internal/storage"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	s := miniredis.RunT(t)

	c, err := New(context.Background(), "redis://"+s.Addr()+"/0", time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, s
}

func TestCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, s := newTestCache(t)

	_, err := c.Event(ctx, "abcd1234")
	assert.ErrorIs(t, err, storage.ErrCacheMiss)

	max := 10
	event := &models.Event{
		ID:              "ev-1",
		HostID:          "host-1",
		Slug:            "abcd1234",
		Title:           "Wednesday Swim",
		EventDate:       time.Date(2026, 3, 4, 19, 0, 0, 0, time.UTC),
		Location:        "City Pool",
		MaxParticipants: &max,
		Status:          models.EventStatusOpen,
	}

	v, err := c.Version(ctx, "abcd1234")
	require.NoError(t, err)
	assert.Zero(t, v)

	require.NoError(t, c.SetEvent(ctx, event, v))
	assert.True(t, s.Exists("event:slug:abcd1234"))
	assert.Equal(t, time.Minute, s.TTL("event:slug:abcd1234"))

	got, err := c.Event(ctx, "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, event.Title, got.Title)
	assert.Equal(t, 10, *got.MaxParticipants)
	assert.True(t, event.EventDate.Equal(got.EventDate))

	require.NoError(t, c.DeleteEvent(ctx, "abcd1234"))

	_, err = c.Event(ctx, "abcd1234")
	assert.ErrorIs(t, err, storage.ErrCacheMiss)

	v, err = c.Version(ctx, "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, s := newTestCache(t)

	require.NoError(t, c.SetEvent(ctx, &models.Event{Slug: "zzzz9999"}, 0))

	s.FastForward(2 * time.Minute)

	_, err := c.Event(ctx, "zzzz9999")
	assert.ErrorIs(t, err, storage.ErrCacheMiss)
}

func TestCache_SetAfterInvalidateIsRejected(t *testing.T) {
	ctx := context.Background()
	c, s := newTestCache(t)

	open := &models.Event{Slug: "swim0001", Status: models.EventStatusOpen}

	v, err := c.Version(ctx, open.Slug)
	require.NoError(t, err)

	// the host closes the event after the reader loaded it
	require.NoError(t, c.DeleteEvent(ctx, open.Slug))

	err = c.SetEvent(ctx, open, v)
	assert.ErrorIs(t, err, storage.ErrCacheStale)
	assert.False(t, s.Exists("event:slug:swim0001"))

	v, err = c.Version(ctx, open.Slug)
	require.NoError(t, err)

	closed := &models.Event{Slug: "swim0001", Status: models.EventStatusClosed}
	require.NoError(t, c.SetEvent(ctx, closed, v))

	got, err := c.Event(ctx, open.Slug)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusClosed, got.Status)
}

func TestCache_VersionKeyExpires(t *testing.T) {
	ctx := context.Background()
	c, s := newTestCache(t)

	require.NoError(t, c.DeleteEvent(ctx, "abcd1234"))
	assert.Equal(t, 24*time.Hour, s.TTL("event:version:abcd1234"))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(context.Background(), "not a url", time.Minute)
	assert.Error(t, err)
}
