package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/teatime/engine/world"
	"github.com/nathoo/teatime/types"
)

// Abbreviated direction verbs expand to the door direction labels.
var directionExpansions = map[string]string{
	"n": "north",
	"s": "south",
	"e": "east",
	"w": "west",
}

// handleGo moves the player through a door. An open door updates the
// player's room and composes the new room's banner, the door's traversal
// message, and the new room's description. A closed door answers with its
// closed message only.
func (e *Engine) handleGo(verb string) types.Result {
	direction := verb
	if full, ok := directionExpansions[verb]; ok {
		direction = full
	}

	door := e.room().Door(direction)
	if door == nil {
		return types.Result{Message: "You can't go that way."}
	}
	if !door.Open {
		return types.Result{Message: door.ClosedMsg}
	}

	e.Player.At = door.Target
	here := e.room()
	parts := []string{here.Banner()}
	if door.OpenMsg != "" {
		parts = append(parts, door.OpenMsg)
	}
	parts = append(parts, here.Desc)
	return types.Result{Message: strings.Join(parts, "\n")}
}

// handleExamine describes the room, the player, or a named entity,
// resolving player inventory first, then the room's objects, then its
// characters. Examining a room object that contains other objects reveals
// them: each named nested object becomes takeable.
func (e *Engine) handleExamine(cmd types.Command) types.Result {
	here := e.room()

	if cmd.Object == "" {
		return types.Result{Message: here.Desc}
	}
	if cmd.Object == "me" || cmd.Object == "myself" {
		return types.Result{Message: e.Player.Desc}
	}

	if obj := e.Player.Find(cmd.Object); obj != nil {
		return types.Result{Message: obj.Desc}
	}

	if obj := here.Objects.Find(cmd.Object); obj != nil {
		msg := obj.Desc
		if len(obj.Contains) > 0 {
			for _, name := range obj.Contains {
				if nested := here.Objects.Find(name); nested != nil && !nested.CanTake {
					nested.CanTake = true
				}
			}
			msg = fmt.Sprintf("%s\nYou can now take: %s.", obj.Desc, strings.Join(obj.Contains, ", "))
		}
		return types.Result{Message: msg}
	}

	if ch := here.Character(cmd.Object); ch != nil {
		return types.Result{Message: ch.Desc}
	}

	return noObject(cmd.Object)
}

// handleTake moves a takeable object from the room's flat inventory into
// the player's, then scrubs the taken name from every remaining room
// object's nested list so containment-by-name stays consistent.
func (e *Engine) handleTake(cmd types.Command) types.Result {
	if cmd.Object == "" {
		return types.Result{Message: "You can't take nothing!"}
	}

	here := e.room()
	obj := here.Objects.Find(cmd.Object)
	if obj == nil {
		return noObject(cmd.Object)
	}
	taken := here.Objects.Remove(cmd.Object)
	if taken == nil {
		return cantDoThat("take")
	}

	e.Player.Take(taken)
	here.Objects.ClearNested(cmd.Object)
	return types.Result{Message: fmt.Sprintf("You take the %s.", cmd.Object)}
}

// handleInventory lists the player's carried objects.
func (e *Engine) handleInventory() types.Result {
	names := e.Player.Objects.Names()
	if len(names) == 0 {
		return types.Result{Message: "Your pockets are empty."}
	}
	return types.Result{
		Message: "Here are the contents of your pockets:\n\t- " + strings.Join(names, "\n\t- "),
	}
}

// handlePut moves a carried object into a container. The container is
// resolved in the player's inventory first, then the room's, and must list
// the object's name in its accepts set. On success the object value is
// dropped and containment downgrades to name-only in the container's
// nested list. Dropping a tea bag and hot water into the mug starts the
// brew timer.
func (e *Engine) handlePut(cmd types.Command) types.Result {
	if cmd.Object == "" {
		return types.Result{Message: "You can't put nothing!"}
	}
	if !e.Player.Has(cmd.Object) {
		return types.Result{Message: fmt.Sprintf("You don't have %s.", cmd.Object)}
	}

	switch cmd.Prep {
	case "in", "into", "inside":
	default:
		return didntUnderstand(cmd.Prep)
	}

	var container *world.Object
	if c := e.Player.Find(cmd.Target); c != nil {
		container = c
	} else if c := e.room().Objects.Find(cmd.Target); c != nil {
		container = c
	}
	if container == nil {
		return cantDoThat("do")
	}
	if !container.CanAccept(cmd.Object) {
		return cantDoThat("do")
	}

	// The object value is dropped here; only its name survives in the
	// container's nested list.
	e.Player.Objects.Remove(cmd.Object)
	container.AddNested(cmd.Object)

	if container.Name == objMug && container.Holds(objHotWater) && container.Holds(objTeaBag) {
		e.Session.StartBrew(e.Now())
	}

	return types.Result{Message: fmt.Sprintf("You put %s into %s.", cmd.Object, cmd.Target)}
}

// handleUse implements the closed per-object use table. There are exactly
// two usable things, so a switch is the honest model here.
func (e *Engine) handleUse(cmd types.Command) types.Result {
	switch {
	case cmd.Object == "":
		return types.Result{Message: "Use what?"}

	case cmd.Object == objKettle:
		kettle := e.room().Objects.Find(objKettle)
		if kettle == nil {
			return noObject(objKettle)
		}
		if !kettle.Holds(objWater) {
			return types.Result{Message: "You might need to put water into the kettle first."}
		}
		kettle.Contains = []string{objHotWater}
		e.room().Objects.Add(&world.Object{
			Name:    objHotWater,
			Desc:    "hot water",
			CanTake: true,
		})
		return types.Result{Message: "You turn on the kettle. There is now hot water inside the kettle."}

	case cmd.Object == objWatch && e.Player.Has(objWatch):
		elapsed := int(e.Session.Elapsed(e.Now()).Seconds())
		hour := 7 + elapsed/60
		minute := elapsed % 60
		return types.Result{Message: fmt.Sprintf("You glance at your watch. It reads %d:%02dpm.", hour, minute)}

	default:
		return cantDoThat("use")
	}
}

// handleTalk plays a character's dialogue: the first successful talk emits
// OnTalk and flips HasInteracted; later talks emit OnTalkAgain.
func (e *Engine) handleTalk(cmd types.Command) types.Result {
	if cmd.Object == "" {
		return types.Result{Message: "Talk to what?"}
	}
	ch := e.room().Character(cmd.Object)
	if ch == nil {
		return noObject(cmd.Object)
	}
	if !ch.HasInteracted {
		ch.HasInteracted = true
		return types.Result{Message: ch.OnTalk}
	}
	return types.Result{Message: ch.OnTalkAgain}
}

// handleAsk requests a named object from a character ("ask cat for
// sugar"). The character must hold the object and it must be takeable for
// the handover to happen.
func (e *Engine) handleAsk(cmd types.Command) types.Result {
	if cmd.Object == "" {
		return types.Result{Message: "Ask who?"}
	}
	ch := e.room().Character(cmd.Object)
	if ch == nil {
		return noObject(cmd.Object)
	}
	if cmd.Prep != "for" {
		return didntUnderstand(cmd.Prep)
	}
	if !ch.Has(cmd.Target) {
		return doesntHaveThat(cmd.Object)
	}

	obj := ch.Give(cmd.Target)
	if obj == nil {
		return types.Result{Message: fmt.Sprintf("The %s can't give you that.", cmd.Object)}
	}
	e.Player.Take(obj)
	return types.Result{
		Message: fmt.Sprintf("%s. The %s gives you %s.", ch.OnAsk, cmd.Object, cmd.Target),
	}
}
