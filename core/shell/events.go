package shell

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"josephlewis.net/smallsh/core/logger"
)

// Completion reports one terminated background child to the event loop.
type Completion struct {
	PID    int
	Status Status
}

// Fixed notices written when the foreground-only mode flips. The leading
// newline separates the notice from whatever the prompt loop was printing.
const (
	enterForegroundOnlyNotice = "\nEntering foreground-only mode (& is now ignored)\n"
	exitForegroundOnlyNotice  = "\nExiting foreground-only mode\n"
)

// watchEvents is the single event-processing goroutine. It bridges the two
// asynchronous sources — background child terminations and suspend
// requests — into ordinary channel receives, so no reporting or state
// mutation happens inside a signal handler and the foreground status is
// never touched off the main flow.
func (s *Shell) watchEvents() {
	for {
		select {
		case c := <-s.completions:
			s.children.remove(c.PID)
			if c.Status.Signaled {
				fmt.Fprintf(s.out, "Background process with PID %d terminated by signal %d\n", c.PID, int(c.Status.Signal))
			} else {
				fmt.Fprintf(s.out, "Background process with PID %d exited with status %d\n", c.PID, c.Status.Exit)
			}
			s.audit.Info(logger.EventReap,
				zap.Int("pid", c.PID),
				zap.Bool("signaled", c.Status.Signaled),
				zap.Int("exit", c.Status.Exit),
				zap.Int("signal", int(c.Status.Signal)))

		case <-s.suspend:
			if s.mode.Toggle() {
				io.WriteString(s.out, enterForegroundOnlyNotice)
			} else {
				io.WriteString(s.out, exitForegroundOnlyNotice)
			}
			s.audit.Info(logger.EventMode,
				zap.Bool("foreground_only", s.mode.ForegroundOnly()))

		case <-s.done:
			return
		}
	}
}
