package meetup

import (
	"context"
	"fmt"

	"meetup/internal/models"
)

// JoinEvent registers a guest for the event shared under slug. userID is empty
// for anonymous guests; signed-in users can hold one active registration.
func (s *Service) JoinEvent(ctx context.Context, slug, userID string, in JoinInput) (*models.Participant, error) {
	const op = "services.meetup.JoinEvent"

	event, err := s.eventBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p := &models.Participant{
		ID:         s.newID(),
		EventID:    event.ID,
		UserID:     optional(userID),
		GuestName:  in.GuestName,
		GuestPhone: optional(in.GuestPhone),
		Note:       optional(in.Note),
		Status:     models.ParticipantStatusConfirmed,
	}

	if err := s.store.JoinEvent(ctx, p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (s *Service) UpdateParticipantStatus(ctx context.Context, hostID, eventID, participantID string, status models.ParticipantStatus) error {
	const op = "services.meetup.UpdateParticipantStatus"

	if !status.Valid() {
		return fieldError("status", "field status must be one of [pending confirmed cancelled]")
	}

	if err := s.authz.CanManageEvent(ctx, hostID, eventID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.UpdateParticipantStatus(ctx, participantID, eventID, status); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) UpdateAttendance(ctx context.Context, hostID, eventID, participantID string, attended bool) error {
	const op = "services.meetup.UpdateAttendance"

	if err := s.authz.CanManageEvent(ctx, hostID, eventID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.UpdateAttendance(ctx, participantID, eventID, attended); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
