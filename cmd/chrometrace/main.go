// Chrometrace is a small CLI for exercising the chrome trace recorder. Its
// demo command runs concurrent producers against a Tracer and writes a trace
// file that can be loaded in chrome://tracing.
package main

func main() {
	Execute()
}
