// Package engine provides the Step() orchestrator that wires together
// parsing, command dispatch, and the time-triggered update into a single
// turn.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/nathoo/teatime/engine/parser"
	"github.com/nathoo/teatime/engine/state"
	"github.com/nathoo/teatime/engine/world"
	"github.com/nathoo/teatime/types"
)

// Default timing thresholds, used when the game content doesn't set its
// own.
const (
	DefaultGameLength = 300 * time.Second
	DefaultBrewLength = 60 * time.Second
)

// Engine holds the loaded world and the mutable session state. It is
// strictly single-threaded: one command is fully parsed, dispatched, and
// settled before the next input is read.
type Engine struct {
	Game    types.GameDef
	Rooms   []*world.Room
	Player  *world.Player
	Session *state.Session

	// Now supplies the clock. Tests replace it with a fake.
	Now func() time.Time

	gameLength time.Duration
	brewLength time.Duration
}

// New creates an engine over the loaded world and starts the session
// clock.
func New(game types.GameDef, rooms []*world.Room, player *world.Player) *Engine {
	e := &Engine{
		Game:       game,
		Rooms:      rooms,
		Player:     player,
		Now:        time.Now,
		gameLength: DefaultGameLength,
		brewLength: DefaultBrewLength,
	}
	if game.GameLength > 0 {
		e.gameLength = time.Duration(game.GameLength) * time.Second
	}
	if game.BrewLength > 0 {
		e.brewLength = time.Duration(game.BrewLength) * time.Second
	}
	e.Session = state.New(e.Now())
	return e
}

// Step processes one line of player input: parse, dispatch, then the
// per-turn trigger update. Trigger notices (the brew completing) are
// appended to the command's own message.
func (e *Engine) Step(input string) types.Result {
	if e.Session.Over() {
		return types.Result{Message: "The game is over."}
	}

	var res types.Result
	cmd, err := parser.Parse(input)
	if err != nil {
		res = types.Result{Message: err.Error()}
	} else {
		res = e.Handle(cmd)
	}

	if notes := e.Update(); len(notes) > 0 {
		parts := append([]string{res.Message}, notes...)
		res.Message = strings.Join(parts, "\n")
	}
	return res
}

// Handle resolves a parsed command against current world state. Side
// effects are confined to the documented per-verb mutations; every
// verb/target combination yields a user-facing message.
func (e *Engine) Handle(cmd types.Command) types.Result {
	switch cmd.Verb {
	case "north", "n", "south", "s", "east", "e", "west", "w":
		return e.handleGo(cmd.Verb)
	case "examine", "x", "look":
		return e.handleExamine(cmd)
	case "take", "pickup", "get":
		return e.handleTake(cmd)
	case "inventory", "i", "items":
		return e.handleInventory()
	case "put", "place":
		return e.handlePut(cmd)
	case "use":
		return e.handleUse(cmd)
	case "talk":
		return e.handleTalk(cmd)
	case "ask":
		return e.handleAsk(cmd)
	default:
		return didntUnderstand(cmd.Verb)
	}
}

// room returns the player's current room.
func (e *Engine) room() *world.Room {
	return e.Player.Room(e.Rooms)
}

// Canned failure messages.

func didntUnderstand(word string) types.Result {
	return types.Result{Message: fmt.Sprintf("I don't know what %s means.", word)}
}

func noObject(name string) types.Result {
	return types.Result{Message: fmt.Sprintf("There is no %s here.", name)}
}

func cantDoThat(verb string) types.Result {
	return types.Result{Message: fmt.Sprintf("You can't %s that.", verb)}
}

func doesntHaveThat(characterName string) types.Result {
	return types.Result{Message: fmt.Sprintf("The %s doesn't have that.", characterName)}
}
