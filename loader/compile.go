// Package loader loads Lua game content into Go structs at load time.
// The Lua VM is discarded after loading — zero Lua at runtime.
package loader

import (
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/teatime/engine/world"
	"github.com/nathoo/teatime/types"
)

// World is the compiled game content: the fixed room array, the player,
// and the game metadata. It is handed to the engine once and never
// reloaded.
type World struct {
	Game   types.GameDef
	Rooms  []*world.Room
	Player *world.Player

	// Index maps content room IDs to their slice positions.
	Index map[string]world.RoomID
}

// rawRoom holds a room table before compilation.
type rawRoom struct {
	id    string
	table *lua.LTable
}

// rawObject holds an object table before compilation.
type rawObject struct {
	name  string
	table *lua.LTable
}

// rawCharacter holds a character table before compilation.
type rawCharacter struct {
	name  string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// getStringList returns an array-style table field as a string slice.
func getStringList(tbl *lua.LTable, key string) []string {
	t := getTable(tbl, key)
	if t == nil {
		return nil
	}
	var out []string
	for i := 1; i <= t.MaxN(); i++ {
		if s, ok := t.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// compile converts all collected Lua data into a World.
func compile(coll *collector) (*World, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}

	w := &World{
		Game:  compileGame(coll.game),
		Index: map[string]world.RoomID{},
	}

	// First pass: create rooms so door targets can resolve.
	for _, raw := range coll.rooms {
		if _, dup := w.Index[raw.id]; dup {
			return nil, fmt.Errorf("room %q defined twice", raw.id)
		}
		w.Index[raw.id] = world.RoomID(len(w.Rooms))
		w.Rooms = append(w.Rooms, &world.Room{
			Name: getString(raw.table, "name"),
			Desc: getString(raw.table, "desc"),
		})
	}

	// Second pass: doors. Unresolvable targets are left out here and
	// reported by validate.
	for _, raw := range coll.rooms {
		room := w.Rooms[w.Index[raw.id]]
		doors := getTable(raw.table, "doors")
		if doors == nil {
			continue
		}
		for i := 1; i <= doors.MaxN(); i++ {
			dt, ok := doors.RawGetInt(i).(*lua.LTable)
			if !ok {
				continue
			}
			target, known := w.Index[getString(dt, "to")]
			if !known {
				continue
			}
			room.Doors = append(room.Doors, &world.Door{
				Target:     target,
				Direction:  getString(dt, "direction"),
				Open:       getBool(dt, "open", true),
				OpensAfter: time.Duration(getInt(dt, "opens_after")) * time.Second,
				OpenMsg:    getString(dt, "open_msg"),
				ClosedMsg:  getString(dt, "closed_msg"),
			})
		}
	}

	// Objects attach to their room's flat inventory.
	for _, raw := range coll.objects {
		id, ok := w.Index[getString(raw.table, "room")]
		if !ok {
			continue // reported by validate
		}
		w.Rooms[id].Objects.Add(compileObject(raw.name, raw.table))
	}

	// Characters.
	for _, raw := range coll.characters {
		id, ok := w.Index[getString(raw.table, "room")]
		if !ok {
			continue // reported by validate
		}
		w.Rooms[id].Characters = append(w.Rooms[id].Characters, compileCharacter(raw.name, raw.table))
	}

	// Player starts in the game's start room.
	w.Player = &world.Player{Name: "me", Desc: "a person"}
	if coll.player != nil {
		if n := getString(coll.player, "name"); n != "" {
			w.Player.Name = n
		}
		if d := getString(coll.player, "desc"); d != "" {
			w.Player.Desc = d
		}
	}
	if start, ok := w.Index[w.Game.Start]; ok {
		w.Player.At = start
	}

	return w, nil
}

func compileGame(tbl *lua.LTable) types.GameDef {
	return types.GameDef{
		Title:      getString(tbl, "title"),
		Author:     getString(tbl, "author"),
		Version:    getString(tbl, "version"),
		Start:      getString(tbl, "start"),
		Intro:      getStringList(tbl, "intro"),
		WinText:    getStringList(tbl, "win_text"),
		LoseText:   getStringList(tbl, "lose_text"),
		BrewNotice: getString(tbl, "brew_notice"),
		GameLength: getInt(tbl, "game_length"),
		BrewLength: getInt(tbl, "brew_length"),
	}
}

func compileObject(name string, tbl *lua.LTable) *world.Object {
	return &world.Object{
		Name:     name,
		Desc:     getString(tbl, "desc"),
		Contains: getStringList(tbl, "contains"),
		Accepts:  getStringList(tbl, "accepts"),
		CanTake:  getBool(tbl, "takeable", false),
		CanUse:   getBool(tbl, "usable", false),
	}
}

func compileCharacter(name string, tbl *lua.LTable) *world.Character {
	c := &world.Character{
		Name:        name,
		Desc:        getString(tbl, "desc"),
		OnTalk:      getString(tbl, "on_talk"),
		OnTalkAgain: getString(tbl, "on_talk_again"),
		OnAsk:       getString(tbl, "on_ask"),
	}
	if objs := getTable(tbl, "objects"); objs != nil {
		for i := 1; i <= objs.MaxN(); i++ {
			if ot, ok := objs.RawGetInt(i).(*lua.LTable); ok {
				c.Objects.Add(compileObject(getString(ot, "name"), ot))
			}
		}
	}
	return c
}
