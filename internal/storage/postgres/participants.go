package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meetup/internal/models"
	"meetup/internal/storage"
)

// JoinEvent registers a participant. The event row is locked for the whole
// transaction so the status, capacity and duplicate checks cannot interleave
// with a concurrent join for the same event.
func (s *Storage) JoinEvent(ctx context.Context, p *models.Participant) error {
	const op = "storage.postgres.JoinEvent"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var status string
	var maxParticipants sql.NullInt64
	lockQuery := `SELECT status, max_participants FROM events WHERE id = $1 FOR UPDATE`

	err = tx.QueryRowContext(ctx, lockQuery, p.EventID).Scan(&status, &maxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return fmt.Errorf("%s: failed to lock event: %w", op, err)
	}

	if models.EventStatus(status) != models.EventStatusOpen {
		return fmt.Errorf("%s: %w", op, storage.ErrEventNotOpen)
	}

	if maxParticipants.Valid {
		confirmed, err := countConfirmed(ctx, tx, p.EventID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if int64(confirmed) >= maxParticipants.Int64 {
			return fmt.Errorf("%s: %w", op, storage.ErrEventFull)
		}
	}

	if p.UserID != nil {
		var exists bool
		checkQuery := `
			SELECT EXISTS(
				SELECT 1 FROM event_participants
				WHERE event_id = $1 AND user_id = $2 AND status <> 'cancelled'
			)`

		if err = tx.QueryRowContext(ctx, checkQuery, p.EventID, *p.UserID).Scan(&exists); err != nil {
			return fmt.Errorf("%s: failed to check existing registration: %w", op, err)
		}
		if exists {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyJoined)
		}
	}

	insertQuery := `
		INSERT INTO event_participants (id, event_id, user_id, guest_name, guest_phone, note, status, attended)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err = tx.QueryRowContext(ctx, insertQuery,
		p.ID,
		p.EventID,
		p.UserID,
		p.GuestName,
		p.GuestPhone,
		p.Note,
		string(p.Status),
		p.Attended,
	).Scan(&p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyJoined)
		}
		return fmt.Errorf("%s: failed to insert participant: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}

// UpdateParticipantStatus changes the status of a participant of eventID.
// Promoting someone to confirmed is checked against max_participants under
// the same event lock JoinEvent takes.
func (s *Storage) UpdateParticipantStatus(ctx context.Context, id, eventID string, status models.ParticipantStatus) error {
	const op = "storage.postgres.UpdateParticipantStatus"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var maxParticipants sql.NullInt64
	err = tx.QueryRowContext(ctx, `SELECT max_participants FROM events WHERE id = $1 FOR UPDATE`, eventID).
		Scan(&maxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return fmt.Errorf("%s: failed to lock event: %w", op, err)
	}

	var current string
	err = tx.QueryRowContext(ctx, `
		SELECT status FROM event_participants
		WHERE id = $1 AND event_id = $2
		FOR UPDATE`, id, eventID).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrParticipantNotFound)
		}
		return fmt.Errorf("%s: failed to get participant: %w", op, err)
	}

	promoted := status == models.ParticipantStatusConfirmed &&
		models.ParticipantStatus(current) != models.ParticipantStatusConfirmed

	if promoted && maxParticipants.Valid {
		confirmed, err := countConfirmed(ctx, tx, eventID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if int64(confirmed) >= maxParticipants.Int64 {
			return fmt.Errorf("%s: %w", op, storage.ErrEventFull)
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE event_participants
		SET status = $3
		WHERE id = $1 AND event_id = $2`, id, eventID, string(status))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyJoined)
		}
		return fmt.Errorf("%s: failed to update participant: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateAttendance(ctx context.Context, id, eventID string, attended bool) error {
	const op = "storage.postgres.UpdateAttendance"

	query := `
		UPDATE event_participants
		SET attended = $3
		WHERE id = $1 AND event_id = $2`

	result, err := s.DB.ExecContext(ctx, query, id, eventID, attended)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrParticipantNotFound)
	}

	return nil
}

func (s *Storage) Participants(ctx context.Context, eventID string) ([]models.Participant, error) {
	const op = "storage.postgres.Participants"

	query := `
		SELECT id, event_id, user_id, guest_name, guest_phone, note, status, attended, created_at
		FROM event_participants
		WHERE event_id = $1
		ORDER BY created_at ASC`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	participants := make([]models.Participant, 0)
	for rows.Next() {
		var p models.Participant
		err = rows.Scan(
			&p.ID,
			&p.EventID,
			&p.UserID,
			&p.GuestName,
			&p.GuestPhone,
			&p.Note,
			&p.Status,
			&p.Attended,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan participant: %w", op, err)
		}
		participants = append(participants, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating participants: %w", op, err)
	}

	return participants, nil
}

func countConfirmed(ctx context.Context, tx *sql.Tx, eventID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM event_participants
		WHERE event_id = $1 AND status = 'confirmed'`

	var n int
	if err := tx.QueryRowContext(ctx, query, eventID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count confirmed participants: %w", err)
	}

	return n, nil
}
