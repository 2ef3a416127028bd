package loader

import (
	"fmt"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/teatime/engine/world"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Door direction labels. Players type abbreviations too, but content
// declares the full name.
var validDirections = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
}

// validate checks the raw definitions and the compiled world for
// referential integrity and consistency. It reports every problem at
// once rather than stopping at the first.
func validate(coll *collector, w *World) error {
	ve := &ValidationError{}

	if w.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}
	if w.Game.Start == "" {
		ve.Errors = append(ve.Errors, "Game.start is required")
	} else if _, ok := w.Index[w.Game.Start]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start room %q not found in defined rooms", w.Game.Start))
	}

	validateDoors(coll, w, ve)
	validateObjects(coll, w, ve)
	validateCharacters(coll, w, ve)
	validateReachability(w, ve)

	for _, warning := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// validateDoors walks the raw room tables so unresolvable door targets,
// which compile silently skips, are still reported.
func validateDoors(coll *collector, w *World, ve *ValidationError) {
	for _, raw := range coll.rooms {
		doors := getTable(raw.table, "doors")
		if doors == nil {
			continue
		}
		seen := map[string]bool{}
		for i := 1; i <= doors.MaxN(); i++ {
			dt, ok := doors.RawGetInt(i).(*lua.LTable)
			if !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q door %d is not a table", raw.id, i))
				continue
			}

			target := getString(dt, "to")
			if _, ok := w.Index[target]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q door %d points to undefined room %q", raw.id, i, target))
			}

			dir := getString(dt, "direction")
			if !validDirections[dir] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q door %d has invalid direction %q", raw.id, i, dir))
			}
			if seen[dir] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q has more than one door leading %s", raw.id, dir))
			}
			seen[dir] = true

			if !getBool(dt, "open", true) && getString(dt, "closed_msg") == "" && getInt(dt, "opens_after") == 0 {
				ve.Warnings = append(ve.Warnings, fmt.Sprintf(
					"room %q door %d is permanently closed with no closed_msg", raw.id, i))
			}
		}
	}
}

func validateObjects(coll *collector, w *World, ve *ValidationError) {
	// Room references and per-room name uniqueness.
	perRoom := map[string]map[string]bool{}
	for _, raw := range coll.objects {
		roomID := getString(raw.table, "room")
		if _, ok := w.Index[roomID]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"object %q placed in undefined room %q", raw.name, roomID))
			continue
		}
		if perRoom[roomID] == nil {
			perRoom[roomID] = map[string]bool{}
		}
		if perRoom[roomID][raw.name] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"object %q defined twice in room %q", raw.name, roomID))
		}
		perRoom[roomID][raw.name] = true
	}

	// Nested containment references resolve within the same room's flat
	// inventory — the "nested" object is really a sibling.
	for id, roomID := range w.Index {
		room := w.Rooms[roomID]
		for _, name := range room.Objects.Names() {
			obj := room.Objects.Find(name)
			for _, nested := range obj.Contains {
				if !room.Objects.Contains(nested) {
					ve.Errors = append(ve.Errors, fmt.Sprintf(
						"object %q in room %q contains %q, which is not in that room", name, id, nested))
				}
			}
		}
	}
}

func validateCharacters(coll *collector, w *World, ve *ValidationError) {
	perRoom := map[string]map[string]bool{}
	for _, raw := range coll.characters {
		roomID := getString(raw.table, "room")
		if _, ok := w.Index[roomID]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"character %q placed in undefined room %q", raw.name, roomID))
			continue
		}
		if perRoom[roomID] == nil {
			perRoom[roomID] = map[string]bool{}
		}
		if perRoom[roomID][raw.name] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"character %q defined twice in room %q", raw.name, roomID))
		}
		perRoom[roomID][raw.name] = true
	}
}

// validateReachability warns about rooms no door leads to (other than the
// start room) and rooms with no way out.
func validateReachability(w *World, ve *ValidationError) {
	targeted := map[world.RoomID]bool{}
	for _, room := range w.Rooms {
		for _, door := range room.Doors {
			targeted[door.Target] = true
		}
	}
	for id, roomID := range w.Index {
		if id != w.Game.Start && !targeted[roomID] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"room %q is not reachable through any door", id))
		}
		if len(w.Rooms[roomID].Doors) == 0 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"room %q has no doors leading out", id))
		}
	}
}
