package shell

import (
	"fmt"
	"syscall"
)

// Status records how a command ended: either a normal exit code or the
// number of the signal that terminated it, tagged by which case applies.
// The zero value is "exit value 0", the status reported before any
// foreground command has run.
type Status struct {
	Signaled bool
	Exit     int            // valid when !Signaled
	Signal   syscall.Signal // valid when Signaled
}

// ExitStatus builds a Status for a command that exited normally.
func ExitStatus(code int) Status {
	return Status{Exit: code}
}

// SignalStatus builds a Status for a command killed by a signal.
func SignalStatus(sig syscall.Signal) Status {
	return Status{Signaled: true, Signal: sig}
}

// String renders the status the way the status builtin reports it.
func (s Status) String() string {
	if s.Signaled {
		return fmt.Sprintf("terminated by signal %d", int(s.Signal))
	}
	return fmt.Sprintf("exit value: %d", s.Exit)
}
