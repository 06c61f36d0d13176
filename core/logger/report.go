package logger

import (
	"encoding/json"
	"io"
)

// Entry is one decoded audit log line. Fields map to the zap fields the
// interpreter records; unused fields stay at their zero values.
type Entry struct {
	Msg        string   `json:"msg"`
	Argv       []string `json:"argv"`
	PID        int      `json:"pid"`
	Background bool     `json:"background"`
	Signaled   bool     `json:"signaled"`
	Exit       int      `json:"exit"`
	Signal     int      `json:"signal"`
}

// ReadJSONLinesLog parses a newline delimited JSON audit log.
func ReadJSONLinesLog(r io.Reader, handler func(e *Entry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var entry Entry
		if err := decoder.Decode(&entry); err != nil {
			return err
		}
		handler(&entry)
	}
	return nil
}

// NewReport builds an empty audit report.
func NewReport() *Report {
	return &Report{
		Commands: make(map[string]int),
		Builtins: make(map[string]int),
	}
}

// Report aggregates audit log entries for presentation.
type Report struct {
	Entries int `json:"entries"`

	// Commands counts external launches by program name.
	Commands map[string]int `json:"commands"`
	// Builtins counts in-process dispatches by verb.
	Builtins map[string]int `json:"builtins"`

	BackgroundSpawns   int `json:"background_spawns"`
	BackgroundReaps    int `json:"background_reaps"`
	SignalTerminations int `json:"signal_terminations"`
	ModeToggles        int `json:"mode_toggles"`
}

// Update folds one entry into the report.
func (r *Report) Update(e *Entry) {
	r.Entries++

	switch e.Msg {
	case EventSpawn:
		if len(e.Argv) > 0 {
			r.Commands[e.Argv[0]]++
		}
		if e.Background {
			r.BackgroundSpawns++
		}
	case EventBuiltin:
		if len(e.Argv) > 0 {
			r.Builtins[e.Argv[0]]++
		}
	case EventReap:
		r.BackgroundReaps++
		if e.Signaled {
			r.SignalTerminations++
		}
	case EventMode:
		r.ModeToggles++
	}
}
