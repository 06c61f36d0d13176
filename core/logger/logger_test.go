package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesDecodableLines(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	log.Info(EventSpawn,
		zap.Strings("argv", []string{"ls", "-la"}),
		zap.Int("pid", 4000),
		zap.Bool("background", true))
	log.Info(EventReap,
		zap.Int("pid", 4000),
		zap.Bool("signaled", true),
		zap.Int("exit", 0),
		zap.Int("signal", 9))
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var got []*Entry
	err := ReadJSONLinesLog(&buf, func(e *Entry) {
		got = append(got, e)
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, EventSpawn, got[0].Msg)
	assert.Equal(t, []string{"ls", "-la"}, got[0].Argv)
	assert.Equal(t, 4000, got[0].PID)
	assert.True(t, got[0].Background)

	assert.Equal(t, EventReap, got[1].Msg)
	assert.True(t, got[1].Signaled)
	assert.Equal(t, 9, got[1].Signal)
}

func TestReadJSONLinesLogBadInput(t *testing.T) {
	err := ReadJSONLinesLog(strings.NewReader("not json\n"), func(*Entry) {
		t.Fatal("handler called on undecodable input")
	})
	assert.Error(t, err)
}

func TestReportUpdate(t *testing.T) {
	report := NewReport()

	entries := []*Entry{
		{Msg: EventBuiltin, Argv: []string{"status"}},
		{Msg: EventBuiltin, Argv: []string{"cd", "/tmp"}},
		{Msg: EventBuiltin, Argv: []string{"status"}},
		{Msg: EventSpawn, Argv: []string{"ls", "-la"}},
		{Msg: EventSpawn, Argv: []string{"sleep", "5"}, Background: true},
		{Msg: EventReap, PID: 4000, Exit: 0},
		{Msg: EventReap, PID: 4001, Signaled: true, Signal: 9},
		{Msg: EventMode},
		{Msg: "unrelated"},
	}
	for _, e := range entries {
		report.Update(e)
	}

	assert.Equal(t, len(entries), report.Entries)
	assert.Equal(t, map[string]int{"status": 2, "cd": 1}, report.Builtins)
	assert.Equal(t, map[string]int{"ls": 1, "sleep": 1}, report.Commands)
	assert.Equal(t, 1, report.BackgroundSpawns)
	assert.Equal(t, 2, report.BackgroundReaps)
	assert.Equal(t, 1, report.SignalTerminations)
	assert.Equal(t, 1, report.ModeToggles)
}
