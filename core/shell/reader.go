package shell

import (
	"io"

	"github.com/abiosoft/readline"
)

// LineReader supplies input lines to the run loop.
type LineReader interface {
	// ReadLine displays prompt and returns the next line without its
	// trailing newline.
	ReadLine(prompt string) (string, error)
	Close() error
}

// consoleReader reads lines with readline when attached to a terminal and
// falls back to plain reads, writing the prompt itself, otherwise.
type consoleReader struct {
	rl         *readline.Instance
	isTerminal bool
	out        io.Writer
}

// NewConsoleReader builds the interpreter's interactive line reader.
// historyFile may be empty to disable persistent history.
func NewConsoleReader(stdin io.Reader, out io.Writer, historyFile string) (LineReader, error) {
	cfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(stdin),
		Stdout:      out,
		Stderr:      out,
		HistoryFile: historyFile,
	}
	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &consoleReader{
		rl:         rl,
		isTerminal: readline.DefaultIsTerminal(),
		out:        out,
	}, nil
}

func (c *consoleReader) ReadLine(prompt string) (string, error) {
	if c.isTerminal {
		c.rl.SetPrompt(prompt)
	} else {
		// Off-terminal readline doesn't render prompts; the prompt
		// protocol requires one before every read regardless.
		io.WriteString(c.out, prompt)
	}
	return c.rl.Readline()
}

func (c *consoleReader) Close() error {
	return c.rl.Close()
}
