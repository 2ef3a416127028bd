// Package types defines the shared data structures for the Tea Time engine.
// This package contains only type definitions — no logic, no methods.
package types

// Command is the parsed representation of one line of player input.
// A bare direction ("north", "n") parses to a Command whose Verb is the
// direction itself.
type Command struct {
	Verb   string
	Object string // optional, space-joined multi-word phrase
	Prep   string // optional, one of the closed preposition set
	Target string // optional, object phrase after the preposition
}

// Result is the user-facing outcome of dispatching one Command. Every
// verb/target combination produces a Result; there are no fatal errors
// during play.
type Result struct {
	Message string
}

// GameDef holds game metadata, narration text, and timing thresholds
// from Lua.
type GameDef struct {
	Title      string
	Author     string
	Version    string
	Start      string // starting room ID
	Intro      []string
	WinText    []string
	LoseText   []string
	BrewNotice string
	GameLength int // seconds until the player loses
	BrewLength int // seconds the tea must steep
}
