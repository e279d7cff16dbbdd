package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meetup/internal/models"
	"meetup/internal/storage"
)

func (s *Storage) Profile(ctx context.Context, id string) (*models.Profile, error) {
	const op = "storage.postgres.Profile"

	query := `
		SELECT id, username, full_name, website, bio, updated_at
		FROM profiles
		WHERE id = $1`

	var p models.Profile
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Username,
		&p.FullName,
		&p.Website,
		&p.Bio,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrProfileNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &p, nil
}

func (s *Storage) UpsertProfile(ctx context.Context, p *models.Profile) error {
	const op = "storage.postgres.UpsertProfile"

	query := `
		INSERT INTO profiles (id, username, full_name, website, bio, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username,
			full_name = EXCLUDED.full_name,
			website = EXCLUDED.website,
			bio = EXCLUDED.bio,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at`

	err := s.DB.QueryRowContext(ctx, query, p.ID, p.Username, p.FullName, p.Website, p.Bio).Scan(&p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrUsernameTaken)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
