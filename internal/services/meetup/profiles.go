package meetup

import (
	"context"
	"errors"
	"fmt"

	"meetup/internal/models"
	"meetup/internal/policy"
	"meetup/internal/storage"
)

// Profile returns the caller's profile, or an empty one before the first save.
func (s *Service) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "services.meetup.Profile"

	if userID == "" {
		return nil, fmt.Errorf("%s: %w", op, policy.ErrUnauthenticated)
	}

	profile, err := s.store.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrProfileNotFound) {
			return &models.Profile{ID: userID}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*models.Profile, error) {
	const op = "services.meetup.UpdateProfile"

	if userID == "" {
		return nil, fmt.Errorf("%s: %w", op, policy.ErrUnauthenticated)
	}

	profile := &models.Profile{
		ID:       userID,
		Username: optional(in.Username),
		FullName: optional(in.FullName),
		Website:  optional(in.Website),
		Bio:      optional(in.Bio),
	}

	if err := s.store.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return profile, nil
}
