package meetup

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"meetup/internal/models"
	"meetup/internal/policy"
	"meetup/internal/storage"
)

// memStore mimics the postgres store, including the join guarantees.
type memStore struct {
	mu           sync.Mutex
	events       map[string]*models.Event
	participants map[string]*models.Participant
	profiles     map[string]*models.Profile
	failNext     error
	slugTaken    map[string]bool
	seq          int

	// afterSlugRead runs once, outside the lock, after EventBySlug has
	// copied the event.
	afterSlugRead func()
}

func newMemStore() *memStore {
	return &memStore{
		events:       map[string]*models.Event{},
		participants: map[string]*models.Participant{},
		profiles:     map[string]*models.Profile{},
		slugTaken:    map[string]bool{},
	}
}

func (m *memStore) tick() time.Time {
	m.seq++
	return time.Date(2026, 1, 1, 0, 0, m.seq, 0, time.UTC)
}

func (m *memStore) takeErr() error {
	err := m.failNext
	m.failNext = nil
	return err
}

func (m *memStore) CreateEvent(_ context.Context, event *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.takeErr(); err != nil {
		return err
	}
	if m.slugTaken[event.Slug] {
		return storage.ErrSlugExists
	}
	for _, e := range m.events {
		if e.Slug == event.Slug {
			return storage.ErrSlugExists
		}
	}

	event.CreatedAt = m.tick()
	event.UpdatedAt = event.CreatedAt
	cp := *event
	m.events[event.ID] = &cp
	return nil
}

func (m *memStore) UpdateEvent(_ context.Context, event *models.Event) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.events[event.ID]
	if !ok || cur.HostID != event.HostID {
		return nil, storage.ErrEventNotFound
	}

	cur.Title = event.Title
	cur.Description = event.Description
	cur.EventDate = event.EventDate
	cur.Location = event.Location
	cur.LocationURL = event.LocationURL
	cur.MaxParticipants = event.MaxParticipants
	cur.Fee = event.Fee
	cur.UpdatedAt = m.tick()

	cp := *cur
	return &cp, nil
}

func (m *memStore) DeleteEvent(_ context.Context, id, hostID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.events[id]
	if !ok || cur.HostID != hostID {
		return "", storage.ErrEventNotFound
	}
	delete(m.events, id)
	for pid, p := range m.participants {
		if p.EventID == id {
			delete(m.participants, pid)
		}
	}
	return cur.Slug, nil
}

func (m *memStore) UpdateEventStatus(_ context.Context, id, hostID string, status models.EventStatus) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.events[id]
	if !ok || cur.HostID != hostID {
		return "", storage.ErrEventNotFound
	}
	cur.Status = status
	return cur.Slug, nil
}

func (m *memStore) EventsByHost(_ context.Context, hostID string) ([]models.EventSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.takeErr(); err != nil {
		return nil, err
	}

	out := []models.EventSummary{}
	for _, e := range m.events {
		if e.HostID != hostID {
			continue
		}
		n := 0
		for _, p := range m.participants {
			if p.EventID == e.ID {
				n++
			}
		}
		out = append(out, models.EventSummary{Event: *e, ParticipantCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.After(out[j].EventDate) })
	return out, nil
}

func (m *memStore) EventBySlug(_ context.Context, slug string) (*models.Event, error) {
	event, hook, err := m.eventBySlug(slug)
	if hook != nil {
		hook()
	}
	return event, err
}

func (m *memStore) eventBySlug(slug string) (*models.Event, func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hook := m.afterSlugRead
	m.afterSlugRead = nil

	if err := m.takeErr(); err != nil {
		return nil, hook, err
	}
	for _, e := range m.events {
		if e.Slug == slug {
			cp := *e
			return &cp, hook, nil
		}
	}
	return nil, hook, storage.ErrEventNotFound
}

func (m *memStore) EventByID(_ context.Context, id string) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok {
		return nil, storage.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memStore) EventHostID(_ context.Context, id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok {
		return "", storage.ErrEventNotFound
	}
	return e.HostID, nil
}

func (m *memStore) confirmed(eventID string) int {
	n := 0
	for _, p := range m.participants {
		if p.EventID == eventID && p.Status == models.ParticipantStatusConfirmed {
			n++
		}
	}
	return n
}

func (m *memStore) JoinEvent(_ context.Context, p *models.Participant) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[p.EventID]
	if !ok {
		return storage.ErrEventNotFound
	}
	if e.Status != models.EventStatusOpen {
		return storage.ErrEventNotOpen
	}
	if e.IsFull(m.confirmed(e.ID)) {
		return storage.ErrEventFull
	}
	if p.UserID != nil {
		for _, other := range m.participants {
			if other.EventID == p.EventID && other.UserID != nil && *other.UserID == *p.UserID &&
				other.Status != models.ParticipantStatusCancelled {
				return storage.ErrAlreadyJoined
			}
		}
	}

	p.CreatedAt = m.tick()
	cp := *p
	m.participants[p.ID] = &cp
	return nil
}

func (m *memStore) UpdateParticipantStatus(_ context.Context, id, eventID string, status models.ParticipantStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.participants[id]
	if !ok || p.EventID != eventID {
		return storage.ErrParticipantNotFound
	}
	if status == models.ParticipantStatusConfirmed && p.Status != status {
		if m.events[eventID].IsFull(m.confirmed(eventID)) {
			return storage.ErrEventFull
		}
	}
	p.Status = status
	return nil
}

func (m *memStore) UpdateAttendance(_ context.Context, id, eventID string, attended bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.participants[id]
	if !ok || p.EventID != eventID {
		return storage.ErrParticipantNotFound
	}
	p.Attended = attended
	return nil
}

func (m *memStore) Participants(_ context.Context, eventID string) ([]models.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Participant{}
	for _, p := range m.participants {
		if p.EventID == eventID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) Profile(_ context.Context, id string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.takeErr(); err != nil {
		return nil, err
	}
	p, ok := m.profiles[id]
	if !ok {
		return nil, storage.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) UpsertProfile(_ context.Context, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.Username != nil {
		for id, other := range m.profiles {
			if id != p.ID && other.Username != nil && *other.Username == *p.Username {
				return storage.ErrUsernameTaken
			}
		}
	}
	p.UpdatedAt = m.tick()
	cp := *p
	m.profiles[p.ID] = &cp
	return nil
}

// memCache records invalidations so tests can assert on them. Like the redis
// cache it refuses writes whose version was bumped by DeleteEvent.
type memCache struct {
	mu       sync.Mutex
	events   map[string]models.Event
	versions map[string]int64
	deleted  []string
	stale    []string
	getErr   error
}

func newMemCache() *memCache {
	return &memCache{events: map[string]models.Event{}, versions: map[string]int64{}}
}

func (c *memCache) Event(_ context.Context, slug string) (*models.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.getErr != nil {
		return nil, c.getErr
	}
	e, ok := c.events[slug]
	if !ok {
		return nil, storage.ErrCacheMiss
	}
	return &e, nil
}

func (c *memCache) Version(_ context.Context, slug string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.versions[slug], nil
}

func (c *memCache) SetEvent(_ context.Context, event *models.Event, version int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.versions[event.Slug] != version {
		c.stale = append(c.stale, event.Slug)
		return storage.ErrCacheStale
	}
	c.events[event.Slug] = *event
	return nil
}

func (c *memCache) DeleteEvent(_ context.Context, slug string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.versions[slug]++
	delete(c.events, slug)
	c.deleted = append(c.deleted, slug)
	return nil
}

var errBoom = errors.New("boom")

var _ policy.HostLookup = (*memStore)(nil)
