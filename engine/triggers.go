package engine

// The tea-making chain is wired to specific object names. A closed set of
// two triggers (the mug brew and the timed doors) doesn't warrant a
// generic event system.
const (
	objMug       = "mug"
	objKettle    = "kettle"
	objWatch     = "watch"
	objWater     = "water"
	objHotWater  = "hot water"
	objTeaBag    = "tea bag"
	objBrewedTea = "brewed tea"
	objSugar     = "sugar"
)

// Update reevaluates the time-based triggers. It runs once per turn after
// dispatch and returns any notices to surface to the player.
//
// Precedence: the win check runs before the loss check, so a player who
// completes the tea on the very turn the clock runs out still wins. The
// outcome flags are write-once, which makes the first one set final.
func (e *Engine) Update() []string {
	if e.Session.Over() {
		return nil
	}

	now := e.Now()
	elapsed := e.Session.Elapsed(now)
	var notes []string

	// Timed doors swing open once their delay has passed. Setting Open
	// again on a later turn is harmless.
	for _, room := range e.Rooms {
		for _, door := range room.Doors {
			if !door.Open && door.OpensAfter > 0 && elapsed > door.OpensAfter {
				door.Open = true
			}
		}
	}

	// Brew completion: a one-shot transformation of the player's mug.
	if mug := e.Player.Find(objMug); mug != nil {
		if brewed, ok := e.Session.BrewElapsed(now); ok && brewed > e.brewLength &&
			mug.Holds(objHotWater) && mug.Holds(objTeaBag) {
			mug.RemoveNested(objHotWater)
			mug.RemoveNested(objTeaBag)
			mug.AddNested(objBrewedTea)
			mug.Name = objBrewedTea
			if e.Game.BrewNotice != "" {
				notes = append(notes, e.Game.BrewNotice)
			}
		}
	}

	// Win before loss.
	if tea := e.Player.Find(objBrewedTea); tea != nil && tea.Holds(objSugar) {
		e.Session.Win()
	}
	if elapsed >= e.gameLength {
		e.Session.Lose()
	}

	return notes
}
