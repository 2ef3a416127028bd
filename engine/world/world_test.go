package world

import (
	"testing"
	"time"
)

func TestInventoryFindAndContains(t *testing.T) {
	watch := &Object{Name: "watch", CanTake: true}
	couch := &Object{Name: "couch"}
	inv := NewInventory(watch, couch)

	if got := inv.Find("watch"); got != watch {
		t.Errorf("Find(watch) = %v, want the watch", got)
	}
	if got := inv.Find("kettle"); got != nil {
		t.Errorf("Find(kettle) = %v, want nil", got)
	}
	if !inv.Contains("couch") {
		t.Error("Contains(couch) = false, want true")
	}
	if inv.Contains("kettle") {
		t.Error("Contains(kettle) = true, want false")
	}
}

func TestInventoryRemove(t *testing.T) {
	watch := &Object{Name: "watch", CanTake: true}
	couch := &Object{Name: "couch"}
	inv := NewInventory(watch, couch)

	// Non-takeable objects never leave their inventory.
	if got := inv.Remove("couch"); got != nil {
		t.Errorf("Remove(couch) = %v, want nil", got)
	}
	if !inv.Contains("couch") {
		t.Error("couch left the inventory on a refused remove")
	}

	if got := inv.Remove("watch"); got != watch {
		t.Errorf("Remove(watch) = %v, want the watch", got)
	}
	if inv.Contains("watch") {
		t.Error("watch still present after remove")
	}

	// Removing an absent object is nil, not a panic.
	if got := inv.Remove("watch"); got != nil {
		t.Errorf("second Remove(watch) = %v, want nil", got)
	}
}

func TestInventoryMoveBetweenOwners(t *testing.T) {
	watch := &Object{Name: "watch", CanTake: true}
	room := NewInventory(watch)
	var pockets Inventory

	o := room.Remove("watch")
	if o == nil {
		t.Fatal("Remove(watch) = nil")
	}
	pockets.Add(o)

	if room.Contains("watch") {
		t.Error("watch still in room after move")
	}
	if !pockets.Contains("watch") {
		t.Error("watch not in pockets after move")
	}
	if room.Len() != 0 || pockets.Len() != 1 {
		t.Errorf("Len = %d/%d, want 0/1", room.Len(), pockets.Len())
	}
}

func TestInventoryClearNested(t *testing.T) {
	table := &Object{Name: "coffee table", Contains: []string{"watch"}}
	cupboard := &Object{Name: "cupboard", Contains: []string{"mug", "watch"}}
	inv := NewInventory(table, cupboard)

	inv.ClearNested("watch")

	if table.Holds("watch") {
		t.Error("coffee table still lists watch")
	}
	if cupboard.Holds("watch") {
		t.Error("cupboard still lists watch")
	}
	if !cupboard.Holds("mug") {
		t.Error("cupboard lost mug as well")
	}
}

func TestInventoryNames(t *testing.T) {
	inv := NewInventory(&Object{Name: "mug"}, &Object{Name: "kettle"})
	got := inv.Names()
	want := []string{"mug", "kettle"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestObjectNested(t *testing.T) {
	mug := &Object{Name: "mug", Accepts: []string{"tea bag", "hot water", "sugar"}}

	if mug.Holds("tea bag") {
		t.Error("empty mug claims to hold tea bag")
	}
	mug.AddNested("tea bag")
	mug.AddNested("tea bag") // idempotent
	if len(mug.Contains) != 1 {
		t.Errorf("Contains = %v after duplicate add, want one entry", mug.Contains)
	}
	if !mug.Holds("tea bag") {
		t.Error("mug does not hold tea bag after add")
	}

	mug.RemoveNested("tea bag")
	mug.RemoveNested("tea bag") // absent remove is a no-op
	if mug.Holds("tea bag") {
		t.Error("mug still holds tea bag after remove")
	}

	if !mug.CanAccept("sugar") {
		t.Error("CanAccept(sugar) = false, want true")
	}
	if mug.CanAccept("couch") {
		t.Error("CanAccept(couch) = true, want false")
	}
}

func TestRoomDoor(t *testing.T) {
	room := &Room{
		Name: "Hallway",
		Doors: []*Door{
			{Target: 1, Direction: "south", Open: true},
			{Target: 2, Direction: "north", OpensAfter: 3 * time.Minute},
		},
	}

	if d := room.Door("south"); d == nil || d.Target != 1 {
		t.Errorf("Door(south) = %v, want target 1", d)
	}
	if d := room.Door("north"); d == nil || d.Open {
		t.Errorf("Door(north) = %v, want a closed door", d)
	}
	if d := room.Door("east"); d != nil {
		t.Errorf("Door(east) = %v, want nil", d)
	}
}

func TestRoomCharacter(t *testing.T) {
	cat := &Character{Name: "cat"}
	room := &Room{Name: "Unit 11", Characters: []*Character{cat}}

	if got := room.Character("cat"); got != cat {
		t.Errorf("Character(cat) = %v, want the cat", got)
	}
	if got := room.Character("dog"); got != nil {
		t.Errorf("Character(dog) = %v, want nil", got)
	}
}

func TestRoomBanner(t *testing.T) {
	room := &Room{Name: "Kitchen"}
	want := "===============\nKitchen\n==============="
	if got := room.Banner(); got != want {
		t.Errorf("Banner() = %q, want %q", got, want)
	}
}

func TestCharacterGive(t *testing.T) {
	sugar := &Object{Name: "sugar", CanTake: true}
	cat := &Character{Name: "cat", Objects: NewInventory(sugar)}

	if !cat.Has("sugar") {
		t.Error("Has(sugar) = false, want true")
	}
	if got := cat.Give("sugar"); got != sugar {
		t.Errorf("Give(sugar) = %v, want the sugar", got)
	}
	if cat.Has("sugar") {
		t.Error("cat still has sugar after giving it away")
	}
	if got := cat.Give("sugar"); got != nil {
		t.Errorf("second Give(sugar) = %v, want nil", got)
	}
}

func TestPlayerRoom(t *testing.T) {
	rooms := []*Room{{Name: "Living Room"}, {Name: "Kitchen"}}
	p := &Player{At: 1}
	if got := p.Room(rooms); got.Name != "Kitchen" {
		t.Errorf("Room() = %q, want Kitchen", got.Name)
	}
}
