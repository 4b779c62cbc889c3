package state

import (
	"github.com/google/uuid"
)

// Stroke tracks one continuous drawing gesture. The zero value is idle.
type Stroke struct {
	id     string
	active bool
	last   Point
}

// Begin starts a new gesture at p, discarding any gesture in progress.
func (s *Stroke) Begin(p Point) {
	s.id = uuid.NewString()
	s.active = true
	s.last = p
}

// Advance moves the gesture to p and reports the segment to render.
// ok is false when no gesture is active or p equals the last point.
func (s *Stroke) Advance(p Point) (from, to Point, ok bool) {
	if !s.active || p == s.last {
		return Point{}, Point{}, false
	}
	from = s.last
	s.last = p
	return from, p, true
}

// End stops the gesture and reports whether one was active.
func (s *Stroke) End() bool {
	was := s.active
	s.active = false
	return was
}

func (s *Stroke) Active() bool { return s.active }

func (s *Stroke) Last() Point { return s.last }

// ID identifies the current or most recent gesture; empty before the first.
func (s *Stroke) ID() string { return s.id }
