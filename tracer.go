package chrometrace

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// spanIDStride is the distance between consecutive span identifiers. The gap
// leaves room for deriving intermediate identifiers between sibling spans
// later without renumbering.
const spanIDStride = 10

// Tracer records instrumentation events into a Chrome trace-viewer JSON
// file. It accepts every event regardless of category, allocates span
// identifiers, and forwards records to a background writer goroutine that
// owns the file.
//
// All methods are safe for concurrent use. Recording an event never waits
// for disk I/O.
type Tracer struct {
	start    time.Time
	nextSpan atomic.Uint64

	w         *writer
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewTracer creates a tracer writing to the file at path. If path is empty, a
// unique name is generated. The file must not already exist. The background
// writer starts immediately and the JSON array is opened before the first
// event arrives.
//
// The tracer registers a close-and-wait hook with atexit, so an orderly
// process exit flushes and terminates the array even if the caller never
// closes the tracer.
func NewTracer(path string) *Tracer {
	if path == "" {
		path = "chrome_trace_" + xid.New().String() + ".json"
	}

	_, err := os.Stat(path)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", path))
	}

	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}

	fmt.Fprintf(os.Stderr, "Recording trace in %s\n", path)

	t := NewTracerWithWriter(f)

	atexit.Register(t.closeAndWait)

	return t
}

// NewTracerWithWriter creates a tracer writing to w, injecting the sink as a
// dependency. The tracer's writer goroutine assumes exclusive ownership of w
// and closes it after the array is terminated.
func NewTracerWithWriter(w io.WriteCloser) *Tracer {
	t := &Tracer{
		start: time.Now(),
		w:     newWriter(w),
	}

	go t.w.run()

	return t
}

// Enabled always reports true: the tracer applies no category or verbosity
// filtering.
func (t *Tracer) Enabled(_ Metadata) bool {
	return true
}

// NewSpan allocates the next span identifier. Identifiers are strictly
// increasing over the tracer's lifetime and never reused, even under
// concurrent allocation. Nothing about the span is persisted.
func (t *Tracer) NewSpan(_ Metadata, _ []Field) SpanID {
	return SpanID(t.nextSpan.Add(spanIDStride) - spanIDStride)
}

// Record is accepted and ignored; span field values are not persisted.
func (t *Tracer) Record(_ SpanID, _ []Field) {}

// RecordFollowsFrom is accepted and ignored.
func (t *Tracer) RecordFollowsFrom(_, _ SpanID) {}

// Event converts evt into a record and enqueues it for the background
// writer. The record is built synchronously on the calling goroutine; the
// file write happens later on the writer goroutine. Events recorded after
// Close are silently discarded.
func (t *Tracer) Event(evt Event) {
	if t.closed.Load() {
		return
	}

	rec := newRecord(evt, t.start)

	select {
	case t.w.messages <- message{record: &rec}:
	case <-t.w.drained:
		// Writer already gone; the event is dropped, never an error.
	}
}

// Enter is accepted and ignored; span intervals are not persisted.
func (t *Tracer) Enter(_ SpanID) {}

// Exit is accepted and ignored.
func (t *Tracer) Exit(_ SpanID) {}

// Close enqueues the termination message exactly once. It returns as soon as
// the message is handed off; the writer finishes the array and releases the
// file asynchronously. Use Wait to block until the file is fully closed.
func (t *Tracer) Close() {
	t.closeOnce.Do(func() {
		t.closed.Store(true)
		t.w.messages <- message{done: true}
	})
}

// Wait blocks until the background writer has written the closing bracket
// and released the file. It does not itself trigger termination; call Close
// first.
func (t *Tracer) Wait() {
	<-t.w.drained
}

// closeAndWait is the atexit hook. The drain must finish before the process
// exits, or the writer goroutine dies with the array still open.
func (t *Tracer) closeAndWait() {
	t.Close()
	t.Wait()
}
