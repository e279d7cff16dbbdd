// Package policy decides who may manage an event.
package policy

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("authentication required")
)

type HostLookup interface {
	EventHostID(ctx context.Context, id string) (string, error)
}

type Authorizer struct {
	lookup HostLookup
}

func New(lookup HostLookup) *Authorizer {
	return &Authorizer{lookup: lookup}
}

// CanManageEvent returns nil when actorID hosts the event. Lookup errors,
// including storage.ErrEventNotFound, are passed through wrapped.
func (a *Authorizer) CanManageEvent(ctx context.Context, actorID, eventID string) error {
	const op = "policy.CanManageEvent"

	if actorID == "" {
		return fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	hostID, err := a.lookup.EventHostID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if hostID != actorID {
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	return nil
}
