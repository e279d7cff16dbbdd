package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventStatusValid(t *testing.T) {
	t.Parallel()

	for _, s := range []EventStatus{EventStatusDraft, EventStatusOpen, EventStatusClosed, EventStatusCompleted} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, EventStatus("archived").Valid())
	assert.False(t, EventStatus("").Valid())
}

func TestParticipantStatusValid(t *testing.T) {
	t.Parallel()

	for _, s := range []ParticipantStatus{ParticipantStatusPending, ParticipantStatusConfirmed, ParticipantStatusCancelled} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, ParticipantStatus("waitlisted").Valid())
}

func TestEventIsFull(t *testing.T) {
	t.Parallel()

	limit := 2
	e := Event{MaxParticipants: &limit}

	assert.False(t, e.IsFull(1))
	assert.True(t, e.IsFull(2))
	assert.True(t, e.IsFull(3))

	unbounded := Event{}
	assert.False(t, unbounded.IsFull(1000))
}

func TestCountConfirmed(t *testing.T) {
	t.Parallel()

	participants := []Participant{
		{Status: ParticipantStatusConfirmed},
		{Status: ParticipantStatusPending},
		{Status: ParticipantStatusConfirmed},
		{Status: ParticipantStatusCancelled},
	}

	assert.Equal(t, 2, CountConfirmed(participants))
	assert.Equal(t, 0, CountConfirmed(nil))
}
