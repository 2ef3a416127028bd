package world

// Player is the single mutable cursor into the world graph: a location
// plus everything carried.
type Player struct {
	Name    string
	Desc    string
	At      RoomID
	Objects Inventory
}

// Room returns the room the player currently occupies.
func (p *Player) Room(rooms []*Room) *Room {
	return rooms[p.At]
}

// Has reports whether the player carries the named object.
func (p *Player) Has(name string) bool {
	return p.Objects.Contains(name)
}

// Find returns the named carried object, or nil.
func (p *Player) Find(name string) *Object {
	return p.Objects.Find(name)
}

// Take inserts an object into the player's inventory.
func (p *Player) Take(o *Object) {
	p.Objects.Add(o)
}
