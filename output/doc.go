// Package output provides the stock output sinks: console printing, Go
// channel hand-off, HTTP webhook notification and cached speech synthesis.
// Every sink implements core.OutputSink and is a pure consumer of the
// winning response.
package output
