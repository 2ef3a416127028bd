package world

// Character is a stationary NPC with dialogue and its own inventory.
// Characters are fixed per room; none are created or destroyed during
// play.
type Character struct {
	Name          string
	Desc          string
	Objects       Inventory
	OnTalk        string
	OnTalkAgain   string
	OnAsk         string
	HasInteracted bool
}

// Has reports whether the character holds the named object.
func (c *Character) Has(name string) bool {
	return c.Objects.Contains(name)
}

// Give extracts the named object from the character's inventory, or
// returns nil if it is absent or not takeable.
func (c *Character) Give(name string) *Object {
	return c.Objects.Remove(name)
}
