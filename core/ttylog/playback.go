package ttylog

import (
	"io"
	"time"
)

// NewClientOutput writes recorded session output to w as it would have
// appeared; input events are dropped.
func NewClientOutput(w io.Writer) LogSink {
	return func(e *Event) error {
		if e.Type != OutputEvent {
			return nil
		}
		_, err := io.WriteString(w, e.Data)
		return err
	}
}

// NewRealTimePlayback delays each event by its recorded offset before
// passing it on, capping idle gaps at idleTimeLimit. A zero limit means no
// cap.
func NewRealTimePlayback(idleTimeLimit time.Duration, sink LogSink) LogSink {
	var last float64
	initialized := false

	return func(e *Event) error {
		if !initialized {
			initialized = true
			last = e.Time
		}

		delay := time.Duration((e.Time - last) * float64(time.Second))
		if delay < 0 {
			delay = 0
		}
		if idleTimeLimit > 0 && delay > idleTimeLimit {
			delay = idleTimeLimit
		}
		time.Sleep(delay)
		last = e.Time

		return sink(e)
	}
}
