package models

import "time"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusOpen      EventStatus = "open"
	EventStatusClosed    EventStatus = "closed"
	EventStatusCompleted EventStatus = "completed"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusDraft, EventStatusOpen, EventStatusClosed, EventStatusCompleted:
		return true
	}
	return false
}

type Event struct {
	ID              string      `json:"id"`
	HostID          string      `json:"host_id"`
	Slug            string      `json:"slug"`
	Title           string      `json:"title"`
	Description     *string     `json:"description"`
	EventDate       time.Time   `json:"event_date"`
	Location        string      `json:"location"`
	LocationURL     *string     `json:"location_url"`
	MaxParticipants *int        `json:"max_participants"`
	Fee             int         `json:"fee"`
	Status          EventStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// IsFull reports whether confirmed registrations reached max_participants.
// Events without a limit are never full.
func (e *Event) IsFull(confirmed int) bool {
	return e.MaxParticipants != nil && confirmed >= *e.MaxParticipants
}

// EventSummary is a row of the host's event list.
type EventSummary struct {
	Event
	ParticipantCount int `json:"participant_count"`
}

// PublicEvent is what anyone holding the share link sees.
type PublicEvent struct {
	Event            *Event `json:"event"`
	ConfirmedCount   int    `json:"confirmed_count"`
	IsFull           bool   `json:"is_full"`
	CanJoin          bool   `json:"can_join"`
	IsHost           bool   `json:"is_host"`
	DefaultGuestName string `json:"default_guest_name,omitempty"`
}

// HostEvent is the management view of a single event.
type HostEvent struct {
	Event          *Event        `json:"event"`
	Participants   []Participant `json:"participants"`
	ConfirmedCount int           `json:"confirmed_count"`
}

// AttendanceSheet lists everyone who has not been cancelled.
type AttendanceSheet struct {
	Event         *Event        `json:"event"`
	Participants  []Participant `json:"participants"`
	AttendedCount int           `json:"attended_count"`
}
