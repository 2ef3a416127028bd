// Package state manages the mutable session state: the clock origin, the
// brew timestamp, and the two terminal outcome flags. There is exactly one
// Session per game and it is threaded explicitly through every dispatch
// and update call — no ambient globals.
package state

import "time"

// Session is the process-wide game state. StartTime is set once at game
// start and only ever read as an elapsed duration. TeaTime is set the
// moment the win-condition precursor is assembled. The outcome flags are
// write-once: once either is set, the session is over and the other can
// never be set.
type Session struct {
	StartTime time.Time

	teaTime    time.Time
	teaTimeSet bool

	won  bool
	lost bool
}

// New creates a session with the given clock origin.
func New(start time.Time) *Session {
	return &Session{StartTime: start}
}

// Elapsed returns the session time elapsed at now.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}

// StartBrew records the brew origin. Later calls are ignored; the timer
// only ever starts once.
func (s *Session) StartBrew(now time.Time) {
	if !s.teaTimeSet {
		s.teaTime = now
		s.teaTimeSet = true
	}
}

// BrewElapsed returns the time elapsed since the brew started, and whether
// the brew timer is running at all.
func (s *Session) BrewElapsed(now time.Time) (time.Duration, bool) {
	if !s.teaTimeSet {
		return 0, false
	}
	return now.Sub(s.teaTime), true
}

// Brewing reports whether the brew timer has been started.
func (s *Session) Brewing() bool {
	return s.teaTimeSet
}

// Win marks the session won. No-op once the session is over.
func (s *Session) Win() {
	if !s.Over() {
		s.won = true
	}
}

// Lose marks the session lost. No-op once the session is over.
func (s *Session) Lose() {
	if !s.Over() {
		s.lost = true
	}
}

// Won reports whether the player has won.
func (s *Session) Won() bool { return s.won }

// Lost reports whether the player has lost.
func (s *Session) Lost() bool { return s.lost }

// Over reports whether either outcome flag is set.
func (s *Session) Over() bool {
	return s.won || s.lost
}
