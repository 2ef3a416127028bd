package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/teatime/engine"
	"github.com/nathoo/teatime/engine/state"
	"github.com/nathoo/teatime/engine/world"
	"github.com/nathoo/teatime/types"
)

func testEngine() *engine.Engine {
	hall := &world.Room{
		Name:  "Hall",
		Desc:  "A grand hall.",
		Doors: []*world.Door{{Target: 1, Direction: "north", Open: true}},
		Objects: world.NewInventory(
			&world.Object{Name: "key", Desc: "An old key.", CanTake: true},
		),
	}
	garden := &world.Room{
		Name:  "Garden",
		Desc:  "A peaceful garden.",
		Doors: []*world.Door{{Target: 0, Direction: "south", Open: true}},
	}
	player := &world.Player{Name: "me", Desc: "a tester", At: 0}

	eng := engine.New(types.GameDef{
		Title:    "Test Game",
		Start:    "hall",
		Intro:    []string{"Welcome."},
		WinText:  []string{"You did it."},
		LoseText: []string{"Too slow."},
	}, []*world.Room{hall, garden}, player)

	now := time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC)
	eng.Now = func() time.Time { return now }
	eng.Session = state.New(now)
	return eng
}

// readyModel returns a model that has received its first WindowSizeMsg.
func readyModel() Model {
	m := New(testEngine())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

// submit types input and presses enter.
func submit(m Model, input string) Model {
	m.input.SetValue(input)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"===============", kindBanner},
		{"[Goodbye.]", kindSystem},
		{"You can now take: watch.", kindReveal},
		{"You can't go that way.", kindError},
		{"You don't have sugar.", kindError},
		{"There is no dragon here.", kindError},
		{"I don't know what dance means.", kindError},
		{"I didn't get that, come again?", kindError},
		{"A cozy living room.", kindNarrative},
		{"", kindNarrative},
		{"`Well, well. Look who finally ran out of sugar.`", kindDialogue},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestContainsQuotedSpeech(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"`Hello there, neighbor. Lovely evening.`", true},
		{"It's a door.", false},
		{"No quotes here.", false},
		{"`Hi`", false}, // too short to be speech
		{"The cat says `the sugar is yours if you ask nicely.`", true},
	}
	for _, tt := range tests {
		got := containsQuotedSpeech(tt.line)
		if got != tt.want {
			t.Errorf("containsQuotedSpeech(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 80, "short"},
		{"hello world", 5, "hello\nworld"},
		{"The living room stretches before you in the evening light.", 30,
			"The living room stretches\nbefore you in the evening\nlight."},
		{"", 80, ""},
		{"one", 80, "one"},
		{"a b c d e", 3, "a b\nc d\ne"},
	}
	for _, tt := range tests {
		got := wordWrap(tt.text, tt.width)
		if got != tt.want {
			t.Errorf("wordWrap(%q, %d) =\n  %q\nwant:\n  %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestModel_GameCommand(t *testing.T) {
	m := readyModel()
	m = submit(m, "take key")

	var all []string
	for _, rl := range m.rawLines {
		all = append(all, rl.text)
	}
	joined := strings.Join(all, "\n")
	if !strings.Contains(joined, "> take key") {
		t.Errorf("input not echoed:\n%s", joined)
	}
	if !strings.Contains(joined, "You take the key.") {
		t.Errorf("result not appended:\n%s", joined)
	}
}

func TestModel_AgainRepeats(t *testing.T) {
	m := readyModel()
	m = submit(m, "examine key")
	m = submit(m, "g")

	count := 0
	for _, rl := range m.rawLines {
		if rl.text == "An old key." {
			count++
		}
	}
	if count != 2 {
		t.Errorf("examine ran %d times, want 2", count)
	}
}

func TestModel_MetaQuit(t *testing.T) {
	m := readyModel()
	m.input.SetValue("/quit")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if !m.quitting {
		t.Error("model not quitting after /quit")
	}
	if cmd == nil {
		t.Error("no quit command issued")
	}
}

func TestModel_EndedStateExitsOnEnter(t *testing.T) {
	m := readyModel()
	// Force a win so the next Step ends the game.
	m.engine.Player.Take(&world.Object{Name: "brewed tea", Contains: []string{"sugar"}, CanTake: true})
	m = submit(m, "examine key")

	if !m.ended {
		t.Fatal("model not in ended state after the win")
	}
	var all []string
	for _, rl := range m.rawLines {
		all = append(all, rl.text)
	}
	joined := strings.Join(all, "\n")
	if !strings.Contains(joined, "You did it.") {
		t.Errorf("win narration missing:\n%s", joined)
	}
	if !strings.Contains(joined, "Press Enter to exit.") {
		t.Errorf("exit hint missing:\n%s", joined)
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if !m.quitting || cmd == nil {
		t.Error("enter after the ending did not quit")
	}
}

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("examine couch")
	h.Push("north")
	h.Push("take key")

	prev, ok := h.Prev()
	if !ok || prev != "take key" {
		t.Errorf("expected 'take key', got %q (ok=%v)", prev, ok)
	}

	prev, ok = h.Prev()
	if !ok || prev != "north" {
		t.Errorf("expected 'north', got %q (ok=%v)", prev, ok)
	}

	prev, ok = h.Prev()
	if !ok || prev != "examine couch" {
		t.Errorf("expected 'examine couch', got %q (ok=%v)", prev, ok)
	}

	// At oldest, stays there.
	prev, ok = h.Prev()
	if !ok || prev != "examine couch" {
		t.Errorf("expected 'examine couch' at boundary, got %q (ok=%v)", prev, ok)
	}
}

func TestHistory_Next(t *testing.T) {
	h := NewHistory(5)
	h.Push("examine couch")
	h.Push("north")

	h.Prev() // "north"
	h.Prev() // "examine couch"

	next, ok := h.Next()
	if !ok || next != "north" {
		t.Errorf("expected 'north', got %q (ok=%v)", next, ok)
	}

	_, ok = h.Next()
	if ok {
		t.Error("expected false when past newest entry")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev(); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false on empty history")
	}
}

func TestHistory_MaxSize(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c") // "a" evicted

	prev, _ := h.Prev()
	if prev != "c" {
		t.Errorf("expected 'c', got %q", prev)
	}
	prev, _ = h.Prev()
	if prev != "b" {
		t.Errorf("expected 'b', got %q", prev)
	}
	prev, _ = h.Prev()
	if prev != "b" {
		t.Errorf("expected 'b' at boundary, got %q", prev)
	}
}

func TestHistory_NoDuplicates(t *testing.T) {
	h := NewHistory(5)
	h.Push("north")
	h.Push("north") // skipped
	h.Push("north") // skipped

	if len(h.entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(h.entries))
	}
}

func TestHistory_ResetCursor(t *testing.T) {
	h := NewHistory(5)
	h.Push("examine couch")
	h.Push("north")

	h.Prev() // "north"
	h.ResetCursor()

	prev, ok := h.Prev()
	if !ok || prev != "north" {
		t.Errorf("expected 'north' after reset, got %q", prev)
	}
}
