package shell

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// Exit statuses the child context uses before the program image is
// replaced. They are distinguishable from each other and, by shell
// convention, from ordinary program exits.
const (
	// RedirectFailureStatus is used when a redirection file can't be opened.
	RedirectFailureStatus = 1
	// ExecFailureStatus is used when the program image can't be replaced.
	ExecFailureStatus = 127
)

// ExecChild runs inside the re-exec'd child context. It makes the child
// immune to the suspend keystroke that toggles the parent's foreground-only
// mode, wires redirections onto file descriptors 0 and 1, and replaces the
// process image with the requested program.
//
// SIG_IGN survives exec, while the caught-signal dispositions the Go
// runtime installed reset to their defaults. That leaves SIGTSTP ignored
// and SIGINT at its default for the program, so foreground children are
// interruptible even though the interpreter is not.
//
// On success ExecChild never returns. On failure it returns the status the
// child process must exit with alongside a diagnostic.
func ExecChild(stdinPath, stdoutPath string, argv []string) (int, error) {
	signal.Ignore(syscall.SIGTSTP)

	if stdinPath != "" {
		fd, err := unix.Open(stdinPath, unix.O_RDONLY, 0)
		if err != nil {
			return RedirectFailureStatus, fmt.Errorf("cannot open %s for input: %w", stdinPath, err)
		}
		if err := unix.Dup2(fd, 0); err != nil {
			return RedirectFailureStatus, fmt.Errorf("cannot redirect input: %w", err)
		}
		unix.Close(fd)
	}

	if stdoutPath != "" {
		fd, err := unix.Open(stdoutPath, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC, 0644)
		if err != nil {
			return RedirectFailureStatus, fmt.Errorf("cannot open %s for output: %w", stdoutPath, err)
		}
		if err := unix.Dup2(fd, 1); err != nil {
			return RedirectFailureStatus, fmt.Errorf("cannot redirect output: %w", err)
		}
		unix.Close(fd)
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return ExecFailureStatus, fmt.Errorf("%s: command not found", argv[0])
	}
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return ExecFailureStatus, fmt.Errorf("%s: %w", argv[0], err)
	}

	panic("unreachable: exec returned without error")
}
