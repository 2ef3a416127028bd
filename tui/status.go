package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// current room, its exits, the player's pockets, and the session clock.
func (m Model) renderStatusBar() string {
	eng := m.engine
	here := eng.Player.Room(eng.Rooms)

	dirs := make([]string, 0, len(here.Doors))
	for _, d := range here.Doors {
		dirs = append(dirs, d.Direction)
	}
	sort.Strings(dirs)

	elapsed := eng.Session.Elapsed(eng.Now())
	clock := fmt.Sprintf("%d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)

	left := fmt.Sprintf(" %s | Exits: %s", here.Name, strings.Join(dirs, ","))
	right := clock + " "

	// Show carried items if they fit, otherwise just the count.
	names := eng.Player.Objects.Names()
	if len(names) > 0 {
		candidate := fmt.Sprintf("Inv: %s | %s ", strings.Join(names, ", "), clock)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | %s ", len(names), clock)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
