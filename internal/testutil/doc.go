// Package testutil provides shared test doubles: a canned similarity scorer,
// a recording output sink, a static logic adapter and a deterministic random
// source.
package testutil
