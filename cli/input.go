package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// commandReader is a source of player command lines.
type commandReader interface {
	// ReadCommand blocks until a non-blank line is available. At end of
	// input it returns io.EOF.
	ReadCommand() (string, error)
	Close() error
}

// directReader reads commands from any io.Reader. Used for piped input
// and script playback; it does not sanitize escape sequences.
type directReader struct {
	r *bufio.Reader
}

func newDirectReader(r io.Reader) *directReader {
	return &directReader{r: bufio.NewReader(r)}
}

func (dr *directReader) ReadCommand() (string, error) {
	for {
		line, err := dr.r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		if err != nil {
			return "", io.EOF
		}
	}
}

func (dr *directReader) Close() error { return nil }

// interactiveReader reads commands from a TTY through readline, which
// keeps input clear of editing escape sequences and provides history.
type interactiveReader struct {
	rl *readline.Instance
}

func newInteractiveReader(prompt string) (*interactiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("create readline instance: %w", err)
	}
	return &interactiveReader{rl: rl}, nil
}

func (ir *interactiveReader) ReadCommand() (string, error) {
	for {
		line, err := ir.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return "", io.EOF
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
	}
}

func (ir *interactiveReader) Close() error { return ir.rl.Close() }
