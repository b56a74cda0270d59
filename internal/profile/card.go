package profile

import (
	"sync"
	"time"
)

// Overlay is the edit overlay visibility state.
type Overlay string

const (
	OverlayClosed Overlay = "closed"
	OverlayOpen   Overlay = "open"
)

// State is a point-in-time copy of the card.
type State struct {
	Profile Profile
	Overlay Overlay
	Today   time.Time
}

// Age returns the age derived from the state's dob, and false when the dob
// cannot be read as a date.
func (s State) Age() (int, bool) {
	return AgeOn(s.Profile.DOB, s.Today)
}

// Card holds the single profile record and overlay flag for the process.
// Every operation runs under one lock so each completes before the next.
type Card struct {
	mu       sync.Mutex
	profile  Profile
	overlay  Overlay
	now      func() time.Time
	location *time.Location
}

// Option configures a Card.
type Option func(*Card)

// WithSeed replaces the default seed record.
func WithSeed(seed Profile) Option {
	return func(c *Card) { c.profile = seed }
}

// WithClock sets the clock used to resolve today.
func WithClock(now func() time.Time) Option {
	return func(c *Card) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLocation sets the location whose calendar decides today.
func WithLocation(loc *time.Location) Option {
	return func(c *Card) {
		if loc != nil {
			c.location = loc
		}
	}
}

// NewCard returns a card holding the seed record with the overlay closed.
func NewCard(opts ...Option) *Card {
	c := &Card{
		profile:  Seed(),
		overlay:  OverlayClosed,
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current record, overlay, and today.
func (c *Card) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Profile: c.profile,
		Overlay: c.overlay,
		Today:   c.now().In(c.location),
	}
}

// Open shows the edit overlay.
func (c *Card) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overlay = OverlayOpen
}

// Close hides the edit overlay. Edits already applied are kept.
func (c *Card) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overlay = OverlayClosed
}

// Apply writes one field of the live record. No validation is performed.
func (c *Card) Apply(u Update) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	updated, err := c.profile.Apply(u)
	if err != nil {
		return err
	}
	c.profile = updated
	return nil
}

// Submit applies any pending updates in order and hides the overlay. When
// an update names an unknown field nothing is applied and the overlay stays
// as it was.
func (c *Card) Submit(updates ...Update) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.profile
	for _, u := range updates {
		var err error
		next, err = next.Apply(u)
		if err != nil {
			return err
		}
	}
	c.profile = next
	c.overlay = OverlayClosed
	return nil
}
