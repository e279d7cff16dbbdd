package meetup

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"meetup/internal/models"
)

type EventInput struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description,omitempty"`
	EventDate       string `json:"event_date" validate:"required"`
	Location        string `json:"location" validate:"required"`
	LocationURL     string `json:"location_url,omitempty" validate:"omitempty,url"`
	MaxParticipants *int   `json:"max_participants,omitempty" validate:"omitempty,gt=0"`
	Fee             *int   `json:"fee,omitempty" validate:"omitempty,gte=0"`
}

func (in *EventInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.EventDate = strings.TrimSpace(in.EventDate)
	in.Location = strings.TrimSpace(in.Location)
	in.LocationURL = strings.TrimSpace(in.LocationURL)
}

type JoinInput struct {
	GuestName  string `json:"guest_name" validate:"required"`
	GuestPhone string `json:"guest_phone,omitempty"`
	Note       string `json:"note,omitempty"`
}

func (in *JoinInput) Normalize() {
	in.GuestName = strings.TrimSpace(in.GuestName)
	in.GuestPhone = strings.TrimSpace(in.GuestPhone)
	in.Note = strings.TrimSpace(in.Note)
}

type ProfileInput struct {
	Username string `json:"username,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
	Bio      string `json:"bio,omitempty"`
}

func (in *ProfileInput) Normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Website = strings.TrimSpace(in.Website)
	in.Bio = strings.TrimSpace(in.Bio)
}

type EventStatusInput struct {
	Status models.EventStatus `json:"status" validate:"required,oneof=draft open closed completed"`
}

type ParticipantStatusInput struct {
	Status models.ParticipantStatus `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type AttendanceInput struct {
	Attended *bool `json:"attended" validate:"required"`
}

// ValidationError carries per-field messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

func fieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {msg}}}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// parseEventDate accepts RFC3339 and the datetime-local forms browsers send.
// Values without an offset are read in loc.
func parseEventDate(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fieldError("event_date", "field event_date is not a valid date")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func newUUID() string {
	return uuid.NewString()
}
