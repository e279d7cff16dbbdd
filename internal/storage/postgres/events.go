package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meetup/internal/models"
	"meetup/internal/storage"
)

const eventColumns = `id, host_id, slug, title, description, event_date, location, location_url,
		max_participants, fee, status, created_at, updated_at`

func scanEvent(row rowScanner, event *models.Event) error {
	return row.Scan(
		&event.ID,
		&event.HostID,
		&event.Slug,
		&event.Title,
		&event.Description,
		&event.EventDate,
		&event.Location,
		&event.LocationURL,
		&event.MaxParticipants,
		&event.Fee,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
}

func (s *Storage) CreateEvent(ctx context.Context, event *models.Event) error {
	const op = "storage.postgres.CreateEvent"

	query := `
		INSERT INTO events (id, host_id, slug, title, description, event_date, location,
			location_url, max_participants, fee, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	err := s.DB.QueryRowContext(ctx, query,
		event.ID,
		event.HostID,
		event.Slug,
		event.Title,
		event.Description,
		event.EventDate,
		event.Location,
		event.LocationURL,
		event.MaxParticipants,
		event.Fee,
		string(event.Status),
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrSlugExists)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateEvent overwrites the editable fields of an event owned by event.HostID.
// Slug, host and status are left untouched.
func (s *Storage) UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	const op = "storage.postgres.UpdateEvent"

	query := `
		UPDATE events
		SET title = $3, description = $4, event_date = $5, location = $6, location_url = $7,
			max_participants = $8, fee = $9, updated_at = NOW()
		WHERE id = $1 AND host_id = $2
		RETURNING ` + eventColumns

	row := s.DB.QueryRowContext(ctx, query,
		event.ID,
		event.HostID,
		event.Title,
		event.Description,
		event.EventDate,
		event.Location,
		event.LocationURL,
		event.MaxParticipants,
		event.Fee,
	)

	var updated models.Event
	if err := scanEvent(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &updated, nil
}

// DeleteEvent removes the event together with its participants and returns
// the slug it was shared under.
func (s *Storage) DeleteEvent(ctx context.Context, id, hostID string) (string, error) {
	const op = "storage.postgres.DeleteEvent"

	query := `DELETE FROM events WHERE id = $1 AND host_id = $2 RETURNING slug`

	var slug string
	err := s.DB.QueryRowContext(ctx, query, id, hostID).Scan(&slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return slug, nil
}

func (s *Storage) UpdateEventStatus(ctx context.Context, id, hostID string, status models.EventStatus) (string, error) {
	const op = "storage.postgres.UpdateEventStatus"

	query := `
		UPDATE events
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND host_id = $2
		RETURNING slug`

	var slug string
	err := s.DB.QueryRowContext(ctx, query, id, hostID, string(status)).Scan(&slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return slug, nil
}

func (s *Storage) EventsByHost(ctx context.Context, hostID string) ([]models.EventSummary, error) {
	const op = "storage.postgres.EventsByHost"

	query := `
		SELECT e.id, e.host_id, e.slug, e.title, e.description, e.event_date, e.location, e.location_url,
			e.max_participants, e.fee, e.status, e.created_at, e.updated_at, COUNT(p.id)
		FROM events e
		LEFT JOIN event_participants p ON p.event_id = e.id
		WHERE e.host_id = $1
		GROUP BY e.id
		ORDER BY e.event_date DESC`

	rows, err := s.DB.QueryContext(ctx, query, hostID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	events := make([]models.EventSummary, 0)
	for rows.Next() {
		var summary models.EventSummary
		err = rows.Scan(
			&summary.ID,
			&summary.HostID,
			&summary.Slug,
			&summary.Title,
			&summary.Description,
			&summary.EventDate,
			&summary.Location,
			&summary.LocationURL,
			&summary.MaxParticipants,
			&summary.Fee,
			&summary.Status,
			&summary.CreatedAt,
			&summary.UpdatedAt,
			&summary.ParticipantCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}
		events = append(events, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating events: %w", op, err)
	}

	return events, nil
}

func (s *Storage) EventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	const op = "storage.postgres.EventBySlug"

	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`

	var event models.Event
	if err := scanEvent(s.DB.QueryRowContext(ctx, query, slug), &event); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &event, nil
}

func (s *Storage) EventByID(ctx context.Context, id string) (*models.Event, error) {
	const op = "storage.postgres.EventByID"

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event models.Event
	if err := scanEvent(s.DB.QueryRowContext(ctx, query, id), &event); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &event, nil
}

func (s *Storage) EventHostID(ctx context.Context, id string) (string, error) {
	const op = "storage.postgres.EventHostID"

	var hostID string
	err := s.DB.QueryRowContext(ctx, `SELECT host_id FROM events WHERE id = $1`, id).Scan(&hostID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return hostID, nil
}
