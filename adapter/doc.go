// Package adapter provides the concrete logic adapters shipped with parley:
// a regex pattern base with derived binary-conversion and error-code
// adapters, a corpus-similarity adapter, a low-confidence fallback and an
// LLM-backed adapter. All of them implement core.LogicAdapter and are
// stateless across turns.
package adapter
