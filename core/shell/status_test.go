package shell

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	cases := []struct {
		status   Status
		expected string
	}{
		{Status{}, "exit value: 0"},
		{ExitStatus(0), "exit value: 0"},
		{ExitStatus(7), "exit value: 7"},
		{ExitStatus(127), "exit value: 127"},
		{SignalStatus(syscall.SIGKILL), "terminated by signal 9"},
		{SignalStatus(syscall.SIGTERM), "terminated by signal 15"},
	}

	for _, tc := range cases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestModeToggle(t *testing.T) {
	var mode Mode

	assert.False(t, mode.ForegroundOnly())
	assert.True(t, mode.Toggle())
	assert.True(t, mode.ForegroundOnly())
	assert.False(t, mode.Toggle())
	assert.False(t, mode.ForegroundOnly())
}
