package ttylog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// AsciicastFileExt holds the suggested file extension for asciicast files.
const AsciicastFileExt = "cast"

func writeJSONLine(w io.Writer, structure interface{}) error {
	line, err := json.Marshal(structure)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", string(line))
	return err
}

// NewAsciicastLogSink creates a LogSink compatible with the asciicast v2
// format.
//
// See: https://github.com/asciinema/asciinema/blob/develop/doc/asciicast-v2.md
func NewAsciicastLogSink(w io.Writer) LogSink {
	var once sync.Once

	return func(entry *Event) error {
		var headerErr error
		once.Do(func() {
			// Give generic settings that should work to display most
			// outputs.
			headerErr = writeJSONLine(w, map[string]interface{}{
				"version":   2,
				"width":     80,
				"height":    24,
				"timestamp": time.Now().Unix(),
				"title":     "smallsh session",
				"env": map[string]interface{}{
					"TERM":  "xterm-256color",
					"SHELL": "smallsh",
				},
			})
		})
		if headerErr != nil {
			return headerErr
		}

		return writeJSONLine(w, []interface{}{entry.Time, entry.Type, entry.Data})
	}
}

// AsciicastLogSource reads log events from an asciicast formatted file.
type AsciicastLogSource struct {
	r             *bufio.Reader
	consumeHeader sync.Once
}

var _ LogSource = (*AsciicastLogSource)(nil)

// NewAsciicastLogSource reads log events from an asciicast formatted file.
func NewAsciicastLogSource(r io.Reader) *AsciicastLogSource {
	return &AsciicastLogSource{r: bufio.NewReader(r)}
}

// Next gets the next log entry, it returns io.EOF if there are no more.
func (log *AsciicastLogSource) Next() (*Event, error) {
	log.consumeHeader.Do(func() {
		log.r.ReadBytes('\n')
	})

	for {
		line, err := log.r.ReadBytes('\n')
		if err != nil {
			return nil, err
		}

		if len(bytes.TrimSpace(line)) == 0 {
			// Skip blank lines
			continue
		}

		var fields []json.RawMessage
		if err := json.Unmarshal(line, &fields); err != nil {
			return nil, err
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed asciicast line: %q", line)
		}

		var event Event
		if err := json.Unmarshal(fields[0], &event.Time); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(fields[1], &event.Type); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(fields[2], &event.Data); err != nil {
			return nil, err
		}

		switch event.Type {
		case OutputEvent, InputEvent:
			return &event, nil
		default:
			// Skip unknown event types (e.g. resize markers).
			continue
		}
	}
}
