// Package core defines the fundamental contracts and value types of the
// parley dialogue engine: the Response candidate value, the session-scoped
// entity memory, and the LogicAdapter / PreProcessor / OutputSink interfaces
// that concrete strategies implement.
//
// The package is intentionally free of third-party dependencies so that
// adapter authors only ever import core plus whatever their own strategy
// needs.
package core
