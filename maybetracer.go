package chrometrace

// MaybeTracer holds zero or one inner subscriber so that call sites need not
// branch on whether tracing is enabled. With no inner subscriber every
// operation is a no-op: no goroutine is spawned, no file is created, and no
// queue traffic occurs.
type MaybeTracer struct {
	inner Subscriber
}

// NewMaybeTracer wraps inner, which may be nil to disable tracing entirely.
func NewMaybeTracer(inner Subscriber) *MaybeTracer {
	return &MaybeTracer{inner: inner}
}

// Enabled reports false when no inner subscriber is installed.
func (m *MaybeTracer) Enabled(md Metadata) bool {
	if m.inner == nil {
		return false
	}

	return m.inner.Enabled(md)
}

// NewSpan returns the zero sentinel span id when tracing is disabled.
func (m *MaybeTracer) NewSpan(md Metadata, fields []Field) SpanID {
	if m.inner == nil {
		return 0
	}

	return m.inner.NewSpan(md, fields)
}

// Record delegates to the inner subscriber, if any.
func (m *MaybeTracer) Record(span SpanID, fields []Field) {
	if m.inner == nil {
		return
	}

	m.inner.Record(span, fields)
}

// RecordFollowsFrom delegates to the inner subscriber, if any.
func (m *MaybeTracer) RecordFollowsFrom(span, follows SpanID) {
	if m.inner == nil {
		return
	}

	m.inner.RecordFollowsFrom(span, follows)
}

// Event delegates to the inner subscriber, if any.
func (m *MaybeTracer) Event(evt Event) {
	if m.inner == nil {
		return
	}

	m.inner.Event(evt)
}

// Enter delegates to the inner subscriber, if any.
func (m *MaybeTracer) Enter(span SpanID) {
	if m.inner == nil {
		return
	}

	m.inner.Enter(span)
}

// Exit delegates to the inner subscriber, if any.
func (m *MaybeTracer) Exit(span SpanID) {
	if m.inner == nil {
		return
	}

	m.inner.Exit(span)
}
