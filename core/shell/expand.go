package shell

import (
	"strconv"
	"strings"
)

// PIDMarker is the two-character token that expands to the interpreter's
// own process ID wherever it appears inside an argument word.
const PIDMarker = "$$"

// expandPID replaces every non-overlapping occurrence of the PID marker in
// token with the decimal form of pid. Adjacent markers count separately:
// "$$$$" expands to the PID twice.
func expandPID(token string, pid int) string {
	return strings.ReplaceAll(token, PIDMarker, strconv.Itoa(pid))
}
