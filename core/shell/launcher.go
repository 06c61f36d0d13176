package shell

import (
	"io"
	"os"
	"os/exec"
	"syscall"
)

// Child is a handle to one spawned external command.
type Child interface {
	PID() int
	// Wait blocks until the child terminates and reports how it ended.
	// Every child is waited on exactly once: foreground children by the
	// dispatching call, background children by their waiter goroutine.
	Wait() Status
	// Signal delivers sig to the child if it is still running.
	Signal(sig os.Signal) error
}

// Launcher spawns external commands. The OS implementation re-execs the
// interpreter's own binary so the child context can adjust its signal
// dispositions and wire redirections before the program image is replaced.
// Tests substitute a fake.
type Launcher interface {
	Start(cmd *Command) (Child, error)
}

// ChildCommandName is the hidden CLI verb the launcher re-execs to set up
// the child context. See ExecChild.
const ChildCommandName = "exec-child"

// OSLauncher runs commands as real host processes.
type OSLauncher struct {
	// Executable is the path to the interpreter's own binary.
	Executable string
	// Stdin, Stdout and Stderr are inherited by children unless redirected.
	// The interpreter's own standard streams are never rebound.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSLauncher builds a launcher that re-execs the current binary with the
// interpreter's standard streams.
func NewOSLauncher() (*OSLauncher, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return &OSLauncher{
		Executable: self,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}, nil
}

// Start spawns the command through the exec-child trampoline and returns
// without waiting. The caller decides whether to block on the child.
func (l *OSLauncher) Start(c *Command) (Child, error) {
	argv := []string{ChildCommandName}
	if c.InputFile != "" {
		argv = append(argv, "--stdin", c.InputFile)
	}
	if c.OutputFile != "" {
		argv = append(argv, "--stdout", c.OutputFile)
	}
	argv = append(argv, "--")
	argv = append(argv, c.Argv...)

	cmd := exec.Command(l.Executable, argv...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &osChild{cmd: cmd}, nil
}

type osChild struct {
	cmd *exec.Cmd
}

func (c *osChild) PID() int {
	return c.cmd.Process.Pid
}

func (c *osChild) Signal(sig os.Signal) error {
	return c.cmd.Process.Signal(sig)
}

func (c *osChild) Wait() Status {
	_ = c.cmd.Wait()

	if state := c.cmd.ProcessState; state != nil {
		if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return SignalStatus(ws.Signal())
		}
		return ExitStatus(state.ExitCode())
	}

	// Wait failed before the child could be reaped; report it like an exec
	// failure so the status stays non-zero.
	return ExitStatus(ExecFailureStatus)
}
