package world

// Object is an interactive item. Containment is denormalized: Contains
// lists the names of objects held "inside" this one, while the named
// objects themselves remain first-class siblings in the owning room's flat
// inventory until taken. Accepts lists the object names this object is
// willing to receive via "put".
type Object struct {
	Name     string
	Desc     string
	Contains []string
	Accepts  []string
	CanTake  bool
	CanUse   bool
}

// Holds reports whether the object's nested list mentions name.
func (o *Object) Holds(name string) bool {
	for _, n := range o.Contains {
		if n == name {
			return true
		}
	}
	return false
}

// CanAccept reports whether the object is willing to receive name.
func (o *Object) CanAccept(name string) bool {
	for _, n := range o.Accepts {
		if n == name {
			return true
		}
	}
	return false
}

// AddNested appends name to the nested list if it is not already present.
func (o *Object) AddNested(name string) {
	if !o.Holds(name) {
		o.Contains = append(o.Contains, name)
	}
}

// RemoveNested drops name from the nested list. Removing an absent name is
// a no-op.
func (o *Object) RemoveNested(name string) {
	for i, n := range o.Contains {
		if n == name {
			o.Contains = append(o.Contains[:i], o.Contains[i+1:]...)
			return
		}
	}
}

// Inventory is a name-unique collection of objects owned by exactly one
// room, character, or the player. Objects move between inventories by
// remove-then-insert; no object is ever shared.
type Inventory struct {
	objects []*Object
}

// NewInventory builds an inventory over the given objects.
func NewInventory(objects ...*Object) Inventory {
	return Inventory{objects: objects}
}

// Find returns the named object, or nil.
func (inv *Inventory) Find(name string) *Object {
	for _, o := range inv.objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Contains reports whether the named object is present.
func (inv *Inventory) Contains(name string) bool {
	return inv.Find(name) != nil
}

// Add inserts an object. The caller is responsible for having removed it
// from its previous owner first.
func (inv *Inventory) Add(o *Object) {
	inv.objects = append(inv.objects, o)
}

// Remove extracts the named object and returns it, or nil if it is absent
// or not takeable. Non-takeable objects stay put — scenery never leaves
// its inventory.
func (inv *Inventory) Remove(name string) *Object {
	for i, o := range inv.objects {
		if o.Name == name {
			if !o.CanTake {
				return nil
			}
			inv.objects = append(inv.objects[:i], inv.objects[i+1:]...)
			return o
		}
	}
	return nil
}

// ClearNested drops name from every object's nested list, keeping
// containment-by-name consistent after the named object moves away.
func (inv *Inventory) ClearNested(name string) {
	for _, o := range inv.objects {
		o.RemoveNested(name)
	}
}

// Names returns the object names in insertion order.
func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.objects))
	for i, o := range inv.objects {
		names[i] = o.Name
	}
	return names
}

// Len returns the number of objects held.
func (inv *Inventory) Len() int {
	return len(inv.objects)
}
