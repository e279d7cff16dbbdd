package meetup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"meetup/internal/lib/logger/sl"
	"meetup/internal/models"
	"meetup/internal/policy"
	"meetup/internal/storage"
)

func (s *Service) CreateEvent(ctx context.Context, hostID string, in EventInput) (*models.Event, error) {
	const op = "services.meetup.CreateEvent"

	if hostID == "" {
		return nil, fmt.Errorf("%s: %w", op, policy.ErrUnauthenticated)
	}

	event, err := s.eventFromInput(in)
	if err != nil {
		return nil, err
	}
	event.ID = s.newID()
	event.HostID = hostID
	event.Status = models.EventStatusOpen

	for attempt := 1; ; attempt++ {
		event.Slug, err = s.newSlug()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		err = s.store.CreateEvent(ctx, event)
		if err == nil {
			return event, nil
		}
		if !errors.Is(err, storage.ErrSlugExists) || attempt == slugAttempts {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		s.log.Debug("slug collision, regenerating", slog.String("op", op), slog.String("slug", event.Slug))
	}
}

// UpdateEvent rewrites the editable fields. Slug, host and status survive.
func (s *Service) UpdateEvent(ctx context.Context, hostID, id string, in EventInput) (*models.Event, error) {
	const op = "services.meetup.UpdateEvent"

	if err := s.authz.CanManageEvent(ctx, hostID, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	event, err := s.eventFromInput(in)
	if err != nil {
		return nil, err
	}
	event.ID = id
	event.HostID = hostID

	updated, err := s.store.UpdateEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate(ctx, updated.Slug)

	return updated, nil
}

func (s *Service) DeleteEvent(ctx context.Context, hostID, id string) error {
	const op = "services.meetup.DeleteEvent"

	if err := s.authz.CanManageEvent(ctx, hostID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	slug, err := s.store.DeleteEvent(ctx, id, hostID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate(ctx, slug)

	return nil
}

func (s *Service) UpdateEventStatus(ctx context.Context, hostID, id string, status models.EventStatus) error {
	const op = "services.meetup.UpdateEventStatus"

	if !status.Valid() {
		return fieldError("status", "field status must be one of [draft open closed completed]")
	}

	if err := s.authz.CanManageEvent(ctx, hostID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	slug, err := s.store.UpdateEventStatus(ctx, id, hostID, status)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate(ctx, slug)

	return nil
}

func (s *Service) MyEvents(ctx context.Context, hostID string) ([]models.EventSummary, error) {
	const op = "services.meetup.MyEvents"

	if hostID == "" {
		return nil, fmt.Errorf("%s: %w", op, policy.ErrUnauthenticated)
	}

	events, err := s.store.EventsByHost(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// PublicEvent builds the share-link view. viewerID may be empty.
func (s *Service) PublicEvent(ctx context.Context, slug, viewerID string) (*models.PublicEvent, error) {
	const op = "services.meetup.PublicEvent"

	event, err := s.eventBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	participants, err := s.store.Participants(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	confirmed := models.CountConfirmed(participants)
	full := event.IsFull(confirmed)

	view := &models.PublicEvent{
		Event:          event,
		ConfirmedCount: confirmed,
		IsFull:         full,
		CanJoin:        event.Status == models.EventStatusOpen && !full,
		IsHost:         viewerID != "" && viewerID == event.HostID,
	}

	if viewerID != "" {
		profile, err := s.store.Profile(ctx, viewerID)
		switch {
		case err == nil:
			if profile.FullName != nil {
				view.DefaultGuestName = *profile.FullName
			}
		case errors.Is(err, storage.ErrProfileNotFound):
		default:
			s.log.Warn("failed to load viewer profile", slog.String("op", op), sl.Err(err))
		}
	}

	return view, nil
}

func (s *Service) HostEvent(ctx context.Context, hostID, id string) (*models.HostEvent, error) {
	const op = "services.meetup.HostEvent"

	event, participants, err := s.managedEvent(ctx, hostID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.HostEvent{
		Event:          event,
		Participants:   participants,
		ConfirmedCount: models.CountConfirmed(participants),
	}, nil
}

// Attendance lists everyone not cancelled, in registration order.
func (s *Service) Attendance(ctx context.Context, hostID, id string) (*models.AttendanceSheet, error) {
	const op = "services.meetup.Attendance"

	event, participants, err := s.managedEvent(ctx, hostID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sheet := &models.AttendanceSheet{
		Event:        event,
		Participants: make([]models.Participant, 0, len(participants)),
	}
	for _, p := range participants {
		if p.Status == models.ParticipantStatusCancelled {
			continue
		}
		sheet.Participants = append(sheet.Participants, p)
		if p.Attended {
			sheet.AttendedCount++
		}
	}

	return sheet, nil
}

func (s *Service) managedEvent(ctx context.Context, hostID, id string) (*models.Event, []models.Participant, error) {
	if err := s.authz.CanManageEvent(ctx, hostID, id); err != nil {
		return nil, nil, err
	}

	event, err := s.store.EventByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	participants, err := s.store.Participants(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return event, participants, nil
}

func (s *Service) eventFromInput(in EventInput) (*models.Event, error) {
	date, err := parseEventDate(in.EventDate, s.loc)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:           in.Title,
		Description:     optional(in.Description),
		EventDate:       date,
		Location:        in.Location,
		LocationURL:     optional(in.LocationURL),
		MaxParticipants: in.MaxParticipants,
	}
	if in.Fee != nil {
		event.Fee = *in.Fee
	}

	return event, nil
}

func (s *Service) eventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	cacheable := false
	var version int64

	if s.cache != nil {
		event, err := s.cache.Event(ctx, slug)
		switch {
		case err == nil:
			return event, nil
		case errors.Is(err, storage.ErrCacheMiss):
		default:
			s.log.Warn("cache get failed", slog.String("slug", slug), sl.Err(err))
		}

		// the version must be read before the store so a concurrent
		// invalidation makes the write below a no-op
		version, err = s.cache.Version(ctx, slug)
		if err != nil {
			s.log.Warn("cache version failed", slog.String("slug", slug), sl.Err(err))
		} else {
			cacheable = true
		}
	}

	event, err := s.store.EventBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if cacheable {
		err := s.cache.SetEvent(ctx, event, version)
		switch {
		case err == nil:
		case errors.Is(err, storage.ErrCacheStale):
			s.log.Debug("skipped stale cache write", slog.String("slug", slug))
		default:
			s.log.Warn("cache set failed", slog.String("slug", slug), sl.Err(err))
		}
	}

	return event, nil
}

func (s *Service) invalidate(ctx context.Context, slug string) {
	if s.cache == nil || slug == "" {
		return
	}
	if err := s.cache.DeleteEvent(ctx, slug); err != nil {
		s.log.Warn("cache invalidate failed", slog.String("slug", slug), sl.Err(err))
	}
}
