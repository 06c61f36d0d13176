package shell

import (
	"fmt"
	"strings"
)

// Tokens with special meaning to the parser.
const (
	tokenRedirectIn  = "<"
	tokenRedirectOut = ">"
	tokenBackground  = "&"
	commentPrefix    = "#"
)

// Command is one parsed input line: the argument vector (program name
// first), optional redirection targets, and whether the caller asked for
// background execution. A Command is built once per line and never modified
// after parsing.
type Command struct {
	Argv       []string
	InputFile  string
	OutputFile string
	Background bool
}

// parseLine splits line on spaces and assembles a Command. There is no
// quoting or escaping.
//
// "<" and ">" consume the following token as a redirection target; if
// nothing follows, the redirection is silently absent rather than an error.
// "&" requests background execution but is ignored while foreground-only
// mode is active. Every other token becomes an argument after PID marker
// expansion; redirection targets are not expanded. The only parse error is
// exceeding the argument limit.
func parseLine(line string, pid int, foregroundOnly bool, maxArgs int) (*Command, error) {
	var cmd Command

	tokens := strings.Split(line, " ")
	for i := 0; i < len(tokens); i++ {
		switch tok := tokens[i]; tok {
		case "":
			// Runs of spaces produce empty tokens; skip them.
		case tokenRedirectIn:
			if i+1 < len(tokens) {
				i++
				cmd.InputFile = tokens[i]
			}
		case tokenRedirectOut:
			if i+1 < len(tokens) {
				i++
				cmd.OutputFile = tokens[i]
			}
		case tokenBackground:
			if !foregroundOnly {
				cmd.Background = true
			}
		default:
			if len(cmd.Argv) == maxArgs {
				return nil, fmt.Errorf("too many arguments (limit %d)", maxArgs)
			}
			cmd.Argv = append(cmd.Argv, expandPID(tok, pid))
		}
	}

	return &cmd, nil
}
