package shell

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/abiosoft/readline"
	"go.uber.org/zap"
	"josephlewis.net/smallsh/core/config"
	"josephlewis.net/smallsh/core/logger"
)

// Prompt is the literal prompt written before every read.
const Prompt = ": "

// Options configure a Shell beyond what the configuration file carries.
// Zero values fall back to the host process defaults; tests inject fakes.
type Options struct {
	// PID is the process ID the substitution engine expands the marker to.
	PID      int
	Launcher Launcher
	Reader   LineReader
	Stdout   io.Writer
	Stderr   io.Writer
	Audit    *zap.Logger
}

// Shell is the interpreter core: one prompt loop plus an event-processing
// goroutine that reports background completions and mode toggles.
type Shell struct {
	cfg      *config.Configuration
	pid      int
	mode     Mode
	status   Status
	launcher Launcher
	reader   LineReader
	out      *lockedWriter
	errOut   io.Writer
	audit    *zap.Logger

	children    *registry
	completions chan Completion
	suspend     chan os.Signal
	done        chan struct{}
}

// New assembles a Shell from the configuration and options.
func New(cfg *config.Configuration, opts Options) (*Shell, error) {
	s := &Shell{
		cfg:         cfg,
		pid:         opts.PID,
		launcher:    opts.Launcher,
		reader:      opts.Reader,
		errOut:      opts.Stderr,
		audit:       opts.Audit,
		children:    newRegistry(),
		completions: make(chan Completion, 16),
		suspend:     make(chan os.Signal, 1),
		done:        make(chan struct{}),
	}

	if s.pid == 0 {
		s.pid = os.Getpid()
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	s.out = &lockedWriter{w: stdout}
	if s.errOut == nil {
		s.errOut = os.Stderr
	}
	if s.audit == nil {
		s.audit = zap.NewNop()
	}
	if s.launcher == nil {
		launcher, err := NewOSLauncher()
		if err != nil {
			return nil, err
		}
		launcher.Stdout = stdout
		s.launcher = launcher
	}
	if s.reader == nil {
		reader, err := NewConsoleReader(os.Stdin, s.out, cfg.HistoryPath())
		if err != nil {
			return nil, err
		}
		s.reader = reader
	}

	return s, nil
}

// Run is the prompt loop. It returns nil only when the exit builtin runs;
// end-of-input and read errors continue prompting.
func (s *Shell) Run() error {
	defer s.reader.Close()

	// Suspend requests toggle foreground-only mode via the event loop.
	signal.Notify(s.suspend, syscall.SIGTSTP)
	defer signal.Stop(s.suspend)

	// The interpreter itself ignores interrupts; catching them here keeps
	// the process alive while letting children receive the signal at its
	// default disposition after exec.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	eventsStopped := make(chan struct{})
	go func() {
		defer close(eventsStopped)
		s.watchEvents()
	}()
	defer func() {
		close(s.done)
		<-eventsStopped
	}()

	for {
		line, err := s.reader.ReadLine(Prompt)
		switch {
		case err == io.EOF || err == readline.ErrInterrupt:
			// A broken or interrupted read is not a termination condition.
			continue
		case err != nil:
			fmt.Fprintf(s.errOut, "smallsh: %v\n", err)
			continue
		}

		line = strings.TrimRight(line, "\n")
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if len(line) > s.cfg.MaxLineLength {
			fmt.Fprintf(s.errOut, "smallsh: input line exceeds %d characters\n", s.cfg.MaxLineLength)
			continue
		}

		if err := s.handleLine(line); err != nil {
			if err == errExit {
				return nil
			}
			fmt.Fprintf(s.errOut, "smallsh: %v\n", err)
		}
	}
}

// handleLine parses one non-empty, non-comment line and dispatches it to a
// builtin or the launcher.
func (s *Shell) handleLine(line string) error {
	cmd, err := parseLine(line, s.pid, s.mode.ForegroundOnly(), s.cfg.MaxArgs)
	if err != nil {
		return err
	}
	if len(cmd.Argv) == 0 {
		// Only redirections or background markers; nothing to run.
		return nil
	}

	if builtin, ok := AllBuiltins[cmd.Argv[0]]; ok {
		s.audit.Info(logger.EventBuiltin, zap.Strings("argv", cmd.Argv))
		return builtin.Main(s, cmd.Argv)
	}

	s.runExternal(cmd)
	return nil
}

// runExternal spawns cmd and either waits for it (foreground, or background
// downgraded by foreground-only mode) or registers it and returns
// immediately (background).
func (s *Shell) runExternal(cmd *Command) {
	child, err := s.launcher.Start(cmd)
	if err != nil {
		// The command never ran; the interpreter carries on.
		fmt.Fprintf(s.errOut, "smallsh: %s: %v\n", cmd.Argv[0], err)
		return
	}

	background := cmd.Background && !s.mode.ForegroundOnly()
	s.audit.Info(logger.EventSpawn,
		zap.Strings("argv", cmd.Argv),
		zap.Int("pid", child.PID()),
		zap.Bool("background", background))

	if background {
		s.children.add(child)
		fmt.Fprintf(s.out, "Background process ID: %d\n", child.PID())

		go func() {
			status := child.Wait()
			select {
			case s.completions <- Completion{PID: child.PID(), Status: status}:
			case <-s.done:
			}
		}()
		return
	}

	// This is the only writer of the foreground status; background
	// completions never touch it.
	s.status = child.Wait()
}

// lockedWriter serializes writes from the prompt loop and the event loop so
// concurrent reports interleave only on write boundaries.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
