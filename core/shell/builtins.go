package shell

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"syscall"
)

// errExit tells the run loop the exit builtin was invoked.
var errExit = errors.New("exit requested")

// Builtin is a command verb the interpreter executes in-process, never
// spawned as a separate process.
type Builtin interface {
	Main(s *Shell, args []string) error
}

// BuiltinFunc adapts a function to the Builtin interface.
type BuiltinFunc func(s *Shell, args []string) error

func (f BuiltinFunc) Main(s *Shell, args []string) error {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// AllBuiltins holds the registered shell builtins keyed by verb. Any verb
// not present here falls through to the process launcher.
var AllBuiltins = map[string]Builtin{
	"exit":   BuiltinFunc(builtinExit),
	"cd":     BuiltinFunc(builtinCd),
	"status": BuiltinFunc(builtinStatus),
}

// BuiltinNames returns the registered builtin verbs in sorted order.
func BuiltinNames() []string {
	var names []string
	for name := range AllBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// builtinExit terminates every tracked background child with SIGTERM and
// ends the run loop; the interpreter then exits with status 0.
func builtinExit(s *Shell, args []string) error {
	s.children.terminateAll(syscall.SIGTERM)
	return errExit
}

// builtinCd changes the working directory, defaulting to $HOME. A failed
// change is reported and leaves the working directory untouched.
func builtinCd(s *Shell, args []string) error {
	dir := os.Getenv("HOME")
	if len(args) > 1 {
		dir = args[1]
	}
	if err := os.Chdir(dir); err != nil {
		fmt.Fprintf(s.errOut, "cd: %v\n", err)
	}
	return nil
}

// builtinStatus reports how the most recent foreground command ended.
// Background completions never update this value.
func builtinStatus(s *Shell, args []string) error {
	fmt.Fprintf(s.out, "%s\n", s.status)
	return nil
}
