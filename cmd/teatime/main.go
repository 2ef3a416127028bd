// Tea Time is a single-player text adventure about brewing a proper cup of tea.
// Usage: teatime [--version] [--plain] [--width <n>] [--script <file>] [--settings <file>] [<game_directory>]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/ini.v1"

	"github.com/nathoo/teatime/cli"
	"github.com/nathoo/teatime/engine"
	"github.com/nathoo/teatime/loader"
	"github.com/nathoo/teatime/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const defaultGameDir = "games/teatime"

// settings holds the resolved configuration from the ini file and flags.
// Flags win over the file, the file wins over defaults.
type settings struct {
	plain   bool
	width   int
	gameDir string
}

func loadSettings(path string, required bool) (settings, error) {
	s := settings{width: 80, gameDir: defaultGameDir}
	cfg, err := ini.Load(path)
	if err != nil {
		if !required && os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	display := cfg.Section("display")
	s.plain = display.Key("plain").MustBool(s.plain)
	s.width = display.Key("width").MustInt(s.width)
	s.gameDir = cfg.Section("game").Key("dir").MustString(s.gameDir)
	return s, nil
}

func main() {
	var (
		plain        = pflag.Bool("plain", false, "use the plain line-based interface")
		width        = pflag.Int("width", 80, "output width for the plain interface")
		scriptFile   = pflag.String("script", "", "play commands from a script file")
		settingsFile = pflag.String("settings", "settings.ini", "path to a settings file")
		showVersion  = pflag.Bool("version", false, "print version and exit")
	)
	pflag.Parse()

	if *showVersion {
		fmt.Printf("teatime %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	s, err := loadSettings(*settingsFile, pflag.CommandLine.Changed("settings"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading settings: %v\n", err)
		os.Exit(1)
	}
	if pflag.CommandLine.Changed("plain") {
		s.plain = *plain
	}
	if pflag.CommandLine.Changed("width") {
		s.width = *width
	}
	if pflag.NArg() > 0 {
		s.gameDir = pflag.Arg(0)
	}

	// Load and compile Lua game content.
	defs, err := loader.Load(s.gameDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(defs.Game, defs.Rooms, defs.Player)

	// Script mode: play commands from the file, echoed, with no pacing.
	if *scriptFile != "" {
		f, err := os.Open(*scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(eng, os.Stdout)
		c.In = f
		c.EchoInput = true
		c.Width = s.width
		c.Pace = func(time.Duration) {}
		if err := c.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Plain CLI if asked for, or when stdout is piped or redirected.
	if s.plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		c := cli.New(eng, os.Stdout)
		c.Width = s.width
		if err := c.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := tui.Run(eng); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
