// Package tui provides a Bubble Tea terminal UI for the Tea Time engine.
package tui

// History remembers submitted commands so Up/Down can recall them. The
// cursor parks at -1 whenever the player is typing fresh input and walks
// the entries while navigating.
type History struct {
	entries []string
	max     int
	cursor  int // -1 = typing fresh input, 0..len-1 = recalled entry
}

// NewHistory creates a buffer that retains at most max commands.
func NewHistory(max int) *History {
	return &History{
		entries: make([]string, 0, max),
		max:     max,
		cursor:  -1,
	}
}

// Push records a submitted command, dropping the oldest entry when full.
// Resubmitting the previous command adds nothing.
func (h *History) Push(cmd string) {
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = h.entries[1:]
	}
}

// Prev steps back toward older commands, sticking at the oldest. Returns
// false only when there is no history at all.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == -1 {
		h.cursor = len(h.entries) - 1
	} else if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps forward toward newer commands. Walking past the newest
// entry returns false and parks the cursor, handing the line back to
// fresh input.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

// ResetCursor parks the cursor, so the next Prev starts from the newest
// entry again.
func (h *History) ResetCursor() {
	h.cursor = -1
}
