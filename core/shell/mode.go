package shell

import "sync/atomic"

// Mode holds the process-wide foreground-only flag. While the flag is set,
// requests for background execution are downgraded to foreground runs.
//
// The flag is read by the parser and the launcher on the main flow and
// flipped by the event loop when a suspend signal arrives, so all access
// goes through a single atomic word.
type Mode struct {
	foregroundOnly atomic.Bool
}

// ForegroundOnly reports whether background execution is currently
// suppressed.
func (m *Mode) ForegroundOnly() bool {
	return m.foregroundOnly.Load()
}

// Toggle flips the flag and returns the new value. Only the event loop
// toggles, so a load-then-store pair is enough.
func (m *Mode) Toggle() bool {
	next := !m.foregroundOnly.Load()
	m.foregroundOnly.Store(next)
	return next
}
