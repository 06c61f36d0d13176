// Package ttylog records and replays interpreter sessions in the asciicast
// v2 format.
package ttylog

import "io"

// Event types recorded in a session log.
const (
	OutputEvent = "o"
	InputEvent  = "i"
)

// Event is one timestamped chunk of session I/O.
type Event struct {
	// Time is seconds since the start of the recording.
	Time float64
	// Type is OutputEvent or InputEvent.
	Type string
	// Data is the raw bytes as a string.
	Data string
}

// LogSink consumes session events, e.g. to write them to disk or a
// terminal.
type LogSink func(e *Event) error

// LogSource produces session events. Next returns io.EOF when there are no
// more.
type LogSource interface {
	Next() (*Event, error)
}

// Replay pumps every event from source into sink.
func Replay(source LogSource, sink LogSink) error {
	for {
		entry, err := source.Next()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}

		if err := sink(entry); err != nil {
			return err
		}
	}
}
