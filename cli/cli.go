// Package cli provides terminal I/O, output formatting, narration pacing,
// and meta-command dispatch for the Tea Time engine.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dekarrin/rosed"

	"github.com/nathoo/teatime/engine"
)

const prompt = "> "

// Pauses between narration paragraphs.
const (
	titlePause = 3 * time.Second
	paraPause  = 5 * time.Second
)

var textFormatOptions = rosed.Options{
	NoTrailingLineSeparators: true,
}

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader // non-nil switches to direct (non-readline) input
	Out       io.Writer
	Width     int
	EchoInput bool                // echo each input line (for script playback)
	Pace      func(time.Duration) // narration pacing; stubbed in tests

	lastCmd string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine, writing to out.
func New(eng *engine.Engine, out io.Writer) *CLI {
	return &CLI{
		Engine: eng,
		Out:    out,
		Width:  80,
		Pace:   time.Sleep,
	}
}

// Run plays the game: title, intro narration, then the prompt loop until
// the session ends or input runs out.
func (c *CLI) Run() error {
	var reader commandReader
	if c.In != nil {
		reader = newDirectReader(c.In)
	} else {
		ir, err := newInteractiveReader(prompt)
		if err != nil {
			return err
		}
		reader = ir
	}
	defer reader.Close()

	c.printTitle()
	c.narrate(c.Engine.Game.Intro)

	// Describe the starting room.
	here := c.Engine.Player.Room(c.Engine.Rooms)
	c.printLine(here.Banner())
	c.printLine(c.wrap(here.Desc))

	for {
		if c.In != nil {
			// Direct readers have no built-in prompt.
			fmt.Fprint(c.Out, "\n"+prompt)
		} else {
			c.printLine("")
		}

		input, err := reader.ReadCommand()
		if err != nil {
			return nil // end of input
		}
		if strings.HasPrefix(input, "#") {
			continue // script comment
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return nil
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		res := c.Engine.Step(input)
		c.printLine(c.wrap(res.Message))

		if c.Engine.Session.Won() {
			c.narrate(c.Engine.Game.WinText)
			c.printEnd()
			return nil
		}
		if c.Engine.Session.Lost() {
			c.narrate(c.Engine.Game.LoseText)
			c.printEnd()
			return nil
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should
// exit.
func (c *CLI) handleMeta(input string) bool {
	switch strings.Fields(input)[0] {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", input))
	}
	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /quit   — Exit game",
		"  /help   — Show this help",
		"  /state  — Debug: dump current state",
		"",
		"Game commands:",
		"  examine <thing> (x)    — Look closely at something, or the room with no object",
		"  north/south/east/west  — Move (or just type n/s/e/w)",
		"  take/get <item>        — Pick something up",
		"  put <item> in <thing>  — Put an item inside something",
		"  use <item>             — Use an item",
		"  talk <someone>         — Talk to someone",
		"  ask <someone> for <item>",
		"  inventory (i)          — Check your pockets",
		"  again (g)              — Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	eng := c.Engine
	here := eng.Player.Room(eng.Rooms)
	c.printSystem(fmt.Sprintf("Location: %s", here.Name))
	c.printSystem(fmt.Sprintf("Inventory: %v", eng.Player.Objects.Names()))
	c.printSystem(fmt.Sprintf("Elapsed: %s", eng.Session.Elapsed(eng.Now()).Round(time.Second)))
	c.printSystem(fmt.Sprintf("Brewing: %v", eng.Session.Brewing()))
}

const endBanner = "============================"

func (c *CLI) printTitle() {
	c.printLine(endBanner)
	c.printLine(c.Engine.Game.Title)
	c.printLine(endBanner)
	c.pace(titlePause)
}

func (c *CLI) printEnd() {
	c.printLine(endBanner)
	c.printLine("THE END")
	c.printLine(endBanner)
}

// narrate prints paragraphs one at a time with a pause between them.
func (c *CLI) narrate(paragraphs []string) {
	for _, p := range paragraphs {
		c.printLine("")
		c.printLine(c.wrap(p))
		c.printLine("")
		c.pace(paraPause)
	}
}

func (c *CLI) pace(d time.Duration) {
	if c.Pace != nil {
		c.Pace(d)
	}
}

// wrap fits text to the configured width, one line at a time. Messages
// carry structure in their newlines (banner, door message, description;
// the pockets listing), so each line wraps independently and lines that
// already fit pass through untouched.
func (c *CLI) wrap(text string) string {
	if text == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if len(line) <= c.Width {
			continue
		}
		lines[i] = rosed.Edit(line).WithOptions(textFormatOptions).Wrap(c.Width).String()
	}
	return strings.Join(lines, "\n")
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
