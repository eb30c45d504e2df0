package chrometrace

import (
	"encoding/json"
	"io"
)

// queueCapacity bounds the writer's message channel. Producers only block
// when the disk falls this many records behind.
const queueCapacity = 4096

// A message is one unit of work for the background writer: either a record to
// append or the termination mark.
type message struct {
	record *Record
	done   bool
}

// writer owns the output sink exclusively. Exactly one goroutine per tracer
// runs its loop; no other code touches the sink after the writer starts.
type writer struct {
	sink io.WriteCloser

	messages chan message
	drained  chan struct{}
}

func newWriter(sink io.WriteCloser) *writer {
	return &writer{
		sink:     sink,
		messages: make(chan message, queueCapacity),
		drained:  make(chan struct{}),
	}
}

// run is the writer loop. It opens the JSON array before receiving anything,
// appends one comma-terminated object per record, and on the termination
// message closes the array, releases the sink, and exits.
//
// Every I/O error is discarded. A truncated trace file is an acceptable
// outcome; failing the instrumented application is not.
func (w *writer) run() {
	_, _ = io.WriteString(w.sink, "[\n")

	for msg := range w.messages {
		if msg.done {
			break
		}

		b, err := json.Marshal(msg.record)
		if err != nil {
			continue
		}

		_, _ = w.sink.Write(b)
		// Trailing comma: the file is a growing JSON array.
		_, _ = io.WriteString(w.sink, ",\n")
	}

	_, _ = io.WriteString(w.sink, "]\n")
	_ = w.sink.Close()

	close(w.drained)
}
