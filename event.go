package chrometrace

// Metadata describes the static callsite information of an event or span.
type Metadata struct {
	// Target is the category the event belongs to, typically a module or
	// subsystem name. It becomes the "cat" field of the output record.
	Target string

	// Level is the verbosity level of the callsite. The tracer accepts every
	// level; the field exists so that a filtering subscriber can be placed in
	// front of the tracer without changing the event model.
	Level string
}

// Field is one named value attached to an event. String values are written
// verbatim; all other values are rendered with fmt-style formatting.
type Field struct {
	Name  string
	Value any
}

// Event is a single point-in-time instrumentation occurrence: callsite
// metadata plus named field values. Events are consumed once and never
// retained by the tracer.
type Event struct {
	Metadata Metadata
	Fields   []Field
}

// SpanID identifies an instrumentation span. The zero value is the sentinel
// returned when no tracer is installed.
type SpanID uint64

// Subscriber is the capability set instrumentation call sites expect from a
// trace sink. Tracer and MaybeTracer both implement it.
type Subscriber interface {
	// Enabled reports whether events from the given callsite should be
	// constructed at all.
	Enabled(md Metadata) bool

	// NewSpan allocates an identifier for a new span. The span's begin and
	// end are reported through Enter and Exit.
	NewSpan(md Metadata, fields []Field) SpanID

	// Record attaches additional field values to an existing span.
	Record(span SpanID, fields []Field)

	// RecordFollowsFrom declares a causal dependency between two spans.
	RecordFollowsFrom(span, follows SpanID)

	// Event reports a point-in-time occurrence.
	Event(evt Event)

	// Enter marks the beginning of a span's execution.
	Enter(span SpanID)

	// Exit marks the end of a span's execution.
	Exit(span SpanID)
}
