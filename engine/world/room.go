// Package world holds the passive world model: rooms, doors, objects,
// inventories, characters, and the player. It exposes structural queries
// and in-place mutation primitives; all interaction rules live in the
// engine package.
package world

import (
	"strings"
	"time"
)

// RoomID identifies a room. Rooms are stored in a flat slice and the ID is
// the index into it, so a RoomID is always < len(rooms).
type RoomID int

// Room is a location node in the fixed world graph. Rooms are created once
// at load time and never added or removed during play; only their contents
// mutate.
type Room struct {
	Name       string
	Desc       string
	Doors      []*Door
	Objects    Inventory
	Characters []*Character
}

// Door is a directed, possibly time-gated edge between two rooms.
// A closed door transitions to open exactly once, never back.
type Door struct {
	Target     RoomID
	Direction  string
	Open       bool
	OpensAfter time.Duration // 0 means the door never opens on its own
	OpenMsg    string        // shown when traversed while open, may be empty
	ClosedMsg  string        // shown while closed, may be empty
}

const bannerRule = "==============="

// Banner returns the room name framed for display when the player enters.
func (r *Room) Banner() string {
	return strings.Join([]string{bannerRule, r.Name, bannerRule}, "\n")
}

// Door returns the door leading in the given direction, or nil. Door
// directions are unique within a room, enforced at load time.
func (r *Room) Door(direction string) *Door {
	for _, d := range r.Doors {
		if d.Direction == direction {
			return d
		}
	}
	return nil
}

// Character returns the named character present in the room, or nil.
func (r *Room) Character(name string) *Character {
	for _, c := range r.Characters {
		if c.Name == name {
			return c
		}
	}
	return nil
}
