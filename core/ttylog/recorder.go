package ttylog

import (
	"io"
	"log"
	"sync"
	"time"
)

// Recorder tees interpreter output into a session log sink. The prompt loop
// and the event loop both write through it, so writes are serialized.
type Recorder struct {
	mu    sync.Mutex
	out   io.Writer
	sink  LogSink
	start time.Time
}

// NewRecorder wraps out so everything written to it is also recorded into
// sink with timestamps relative to now.
func NewRecorder(out io.Writer, sink LogSink) *Recorder {
	return &Recorder{
		out:   out,
		sink:  sink,
		start: time.Now(),
	}
}

func (r *Recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.sink(&Event{
		Time: time.Since(r.start).Seconds(),
		Type: OutputEvent,
		Data: string(p),
	})
	if err != nil {
		// Recording failures must not break the interactive session.
		log.Printf("session recording: %v", err)
	}

	return r.out.Write(p)
}
