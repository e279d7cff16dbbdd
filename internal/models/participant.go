package models

import "time"

type ParticipantStatus string

const (
	ParticipantStatusPending   ParticipantStatus = "pending"
	ParticipantStatusConfirmed ParticipantStatus = "confirmed"
	ParticipantStatusCancelled ParticipantStatus = "cancelled"
)

func (s ParticipantStatus) Valid() bool {
	switch s {
	case ParticipantStatusPending, ParticipantStatusConfirmed, ParticipantStatusCancelled:
		return true
	}
	return false
}

type Participant struct {
	ID         string            `json:"id"`
	EventID    string            `json:"event_id"`
	UserID     *string           `json:"user_id"`
	GuestName  string            `json:"guest_name"`
	GuestPhone *string           `json:"guest_phone"`
	Note       *string           `json:"note"`
	Status     ParticipantStatus `json:"status"`
	Attended   bool              `json:"attended"`
	CreatedAt  time.Time         `json:"created_at"`
}

// CountConfirmed returns how many participants hold a confirmed seat.
func CountConfirmed(participants []Participant) int {
	n := 0
	for _, p := range participants {
		if p.Status == ParticipantStatusConfirmed {
			n++
		}
	}
	return n
}
