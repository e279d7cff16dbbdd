// Package meetup holds the event, participant and profile operations. Every
// host-only operation goes through the Authorizer before touching storage.
package meetup

import (
	"context"
	"log/slog"
	"time"

	"meetup/internal/lib/slug"
	"meetup/internal/models"
)

type EventStore interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, id, hostID string) (string, error)
	UpdateEventStatus(ctx context.Context, id, hostID string, status models.EventStatus) (string, error)
	EventsByHost(ctx context.Context, hostID string) ([]models.EventSummary, error)
	EventBySlug(ctx context.Context, slug string) (*models.Event, error)
	EventByID(ctx context.Context, id string) (*models.Event, error)
}

type ParticipantStore interface {
	JoinEvent(ctx context.Context, p *models.Participant) error
	UpdateParticipantStatus(ctx context.Context, id, eventID string, status models.ParticipantStatus) error
	UpdateAttendance(ctx context.Context, id, eventID string, attended bool) error
	Participants(ctx context.Context, eventID string) ([]models.Participant, error)
}

type ProfileStore interface {
	Profile(ctx context.Context, id string) (*models.Profile, error)
	UpsertProfile(ctx context.Context, p *models.Profile) error
}

type Store interface {
	EventStore
	ParticipantStore
	ProfileStore
}

type Authorizer interface {
	CanManageEvent(ctx context.Context, actorID, eventID string) error
}

// EventCache is optional; a nil cache disables caching. SetEvent must refuse
// the write with storage.ErrCacheStale when DeleteEvent ran for the slug
// after version was read.
type EventCache interface {
	Event(ctx context.Context, slug string) (*models.Event, error)
	Version(ctx context.Context, slug string) (int64, error)
	SetEvent(ctx context.Context, event *models.Event, version int64) error
	DeleteEvent(ctx context.Context, slug string) error
}

const slugAttempts = 3

type Service struct {
	log   *slog.Logger
	store Store
	authz Authorizer
	cache EventCache
	loc   *time.Location

	newSlug func() (string, error)
	newID   func() string
}

func New(log *slog.Logger, store Store, authz Authorizer, cache EventCache, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		log:     log,
		store:   store,
		authz:   authz,
		cache:   cache,
		loc:     loc,
		newSlug: slug.New,
		newID:   newUUID,
	}
}
