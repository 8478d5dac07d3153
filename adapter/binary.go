package adapter

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/parrotlabs/parley/core"
)

// Binary converts binary digit runs found in the utterance to their decimal
// value, e.g. "bin 1010101010" -> "Decimal value of 1010101010 is 682".
type Binary struct {
	Regex
}

var _ core.LogicAdapter = (*Binary)(nil)

// NewBinary creates the binary conversion adapter.
func NewBinary() *Binary {
	return &Binary{Regex: Regex{
		Pattern:  regexp.MustCompile(`([01]{2,})`),
		Keywords: []string{"binary", "bin"},
	}}
}

// Name implements core.LogicAdapter.
func (a *Binary) Name() string { return "binary-convert" }

// Process implements core.LogicAdapter.
func (a *Binary) Process(_ context.Context, utterance string, _ *core.Session) (core.Response, error) {
	bits := a.FirstMatch(utterance)
	if bits == "" {
		return core.Response{}, fmt.Errorf("no binary digits in %q", utterance)
	}
	value, err := strconv.ParseInt(bits, 2, 64)
	if err != nil {
		return core.Response{}, fmt.Errorf("parse binary %q: %w", bits, err)
	}

	text := fmt.Sprintf("Decimal value of %s is %d", bits, value)
	return core.NewResponse(text, a.Confidence(bits, utterance)), nil
}
