// Package chrometrace records instrumentation events as a Chrome
// trace-viewer JSON file.
//
// A Tracer converts each event into a trace-viewer record and hands it to a
// background writer goroutine that owns the output file. Producers never
// perform file I/O and never wait for the disk: recording an event only
// enqueues a message. Closing the tracer enqueues a termination message; the
// writer finishes the JSON array and releases the file asynchronously.
//
// The output is a JSON array of instantaneous ("I" phase), process-scoped
// event objects, loadable in chrome://tracing and compatible viewers.
package chrometrace
