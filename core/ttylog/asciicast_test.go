package ttylog

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsciicastRoundTrip(t *testing.T) {
	events := []*Event{
		{Time: 0, Type: OutputEvent, Data: ": "},
		{Time: 0.5, Type: InputEvent, Data: "ls\r"},
		{Time: 1.25, Type: OutputEvent, Data: "file.txt\r\n"},
	}

	var buf bytes.Buffer
	sink := NewAsciicastLogSink(&buf)
	for _, e := range events {
		require.NoError(t, sink(e))
	}

	source := NewAsciicastLogSource(&buf)
	for _, want := range events {
		got, err := source.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := source.Next()
	assert.Equal(t, io.EOF, err)
}

func TestAsciicastSinkWritesHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	sink := NewAsciicastLogSink(&buf)

	require.NoError(t, sink(&Event{Type: OutputEvent, Data: "a"}))
	require.NoError(t, sink(&Event{Time: 1, Type: OutputEvent, Data: "b"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var header map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &header))
	assert.EqualValues(t, 2, header["version"])
	assert.EqualValues(t, 80, header["width"])
	assert.EqualValues(t, 24, header["height"])
}

func TestAsciicastSourceSkipsNoise(t *testing.T) {
	input := `{"version": 2, "width": 80, "height": 24}

[0.1, "r", "100x40"]
[0.5, "o", "hello"]
`
	source := NewAsciicastLogSource(strings.NewReader(input))

	got, err := source.Next()
	require.NoError(t, err)
	assert.Equal(t, &Event{Time: 0.5, Type: OutputEvent, Data: "hello"}, got)

	_, err = source.Next()
	assert.Equal(t, io.EOF, err)
}

func TestAsciicastSourceMalformedLine(t *testing.T) {
	input := `{"version": 2}
[0.5, "o"]
`
	source := NewAsciicastLogSource(strings.NewReader(input))

	_, err := source.Next()
	assert.ErrorContains(t, err, "malformed asciicast line")
}

func TestReplay(t *testing.T) {
	input := `{"version": 2}
[0.0, "o", "out"]
[0.1, "i", "in"]
[0.2, "o", "more"]
`
	var out strings.Builder
	err := Replay(NewAsciicastLogSource(strings.NewReader(input)), NewClientOutput(&out))
	require.NoError(t, err)

	// Input events are dropped from client playback.
	assert.Equal(t, "outmore", out.String())
}

func TestRecorderTees(t *testing.T) {
	var screen bytes.Buffer
	var recorded []*Event
	rec := NewRecorder(&screen, func(e *Event) error {
		recorded = append(recorded, e)
		return nil
	})

	n, err := rec.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	n, err = rec.Write([]byte(" world"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	assert.Equal(t, "hello world", screen.String())

	require.Len(t, recorded, 2)
	assert.Equal(t, "hello", recorded[0].Data)
	assert.Equal(t, " world", recorded[1].Data)
	assert.Equal(t, OutputEvent, recorded[0].Type)
	assert.LessOrEqual(t, recorded[0].Time, recorded[1].Time)
}

func TestRecorderSinkErrorsDoNotBreakWrites(t *testing.T) {
	var screen bytes.Buffer
	rec := NewRecorder(&screen, func(*Event) error {
		return io.ErrClosedPipe
	})

	n, err := rec.Write([]byte("still works"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, "still works", screen.String())
}
