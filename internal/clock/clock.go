// Package clock resolves the "current date" for scheduling decisions.
// Production uses a fixed timezone; non-production configurations may pin
// the date with FAKE_DATE for deterministic runs.
package clock

import (
	"time"
)

const DefaultTimezone = "America/Chicago"

type Clock struct {
	loc      *time.Location
	fakeDate string
	now      func() time.Time
}

// New builds a Clock in the given timezone. fakeDate, when non-empty and
// well-formed (YYYY-MM-DD), pins Now to that date; a malformed value
// falls back to the real time.
func New(timezone, fakeDate string) (*Clock, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &Clock{loc: loc, fakeDate: fakeDate, now: time.Now}, nil
}

// Now returns the timezone-fixed current time, or the pinned fake date.
func (c *Clock) Now() time.Time {
	if c.fakeDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", c.fakeDate, c.loc); err == nil {
			return t
		}
	}
	return c.now().In(c.loc)
}

// Location exposes the clock's timezone.
func (c *Clock) Location() *time.Location {
	return c.loc
}
