package chrometrace

import (
	"fmt"
	"os"
	"time"
)

// unknownName is the display name used when an event carries no message
// field.
const unknownName = "<unknown>"

// messageField is the reserved field name that becomes the record's display
// name instead of an args entry.
const messageField = "message"

// A Record is one trace-viewer event object, ready for serialization. The
// tracer only emits instantaneous ("I" phase), process-scoped ("p") records.
type Record struct {
	Name      string            `json:"name"`
	Category  string            `json:"cat"`
	Phase     string            `json:"ph"`
	Timestamp uint64            `json:"ts"`
	Scope     string            `json:"s"`
	PID       int               `json:"pid"`
	TID       int               `json:"tid"`
	Args      map[string]string `json:"args"`
}

// newRecord converts one event into a Record. It never fails: a missing
// message field falls back to a placeholder name, and non-string field values
// degrade to their fmt rendering. A field name repeated within one event is
// accepted, last write wins.
func newRecord(evt Event, start time.Time) Record {
	name := unknownName
	args := map[string]string{}

	for _, f := range evt.Fields {
		if f.Name == messageField {
			name = stringify(f.Value)
			continue
		}

		args[f.Name] = stringify(f.Value)
	}

	return Record{
		Name:      name,
		Category:  evt.Metadata.Target,
		Phase:     "I",
		Timestamp: inMicros(time.Since(start)),
		Scope:     "p",
		PID:       os.Getpid(),
		TID:       threadID(),
		Args:      args,
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%+v", v)
}

// inMicros truncates a duration to whole microseconds.
func inMicros(d time.Duration) uint64 {
	return 1_000_000*uint64(d/time.Second) + uint64(d%time.Second)/1000
}
