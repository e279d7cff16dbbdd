package storage

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrSlugExists          = errors.New("slug already exists")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrAlreadyJoined       = errors.New("already joined this event")
	ErrEventFull           = errors.New("event is full")
	ErrEventNotOpen        = errors.New("event is not open for registration")
	ErrCacheMiss           = errors.New("cache miss")
	ErrCacheStale          = errors.New("cache entry is stale")
)
