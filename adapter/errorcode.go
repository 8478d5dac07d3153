package adapter

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/parrotlabs/parley/core"
)

// DefaultErrorCodes is the stock printer error-code table.
var DefaultErrorCodes = map[string]string{
	"10": "There is a problem on the duplex unit.",
	"38": "The machine does not work due to a paper jam.",
	"43": "The internal temperature is too low or too high.",
	"48": "There is a problem on the print head.",
	"4F": "The machine does not work due to a paper jam or some sensor problem.",
	"8F": "There is a problem on the duplex unit.",
}

// ErrorCodeOptions configures an ErrorCode adapter.
type ErrorCodeOptions struct {
	// Codes maps upper-case error codes to their explanation. Defaults to
	// DefaultErrorCodes.
	Codes map[string]string
}

// ErrorCode answers "#XX" style error-code mentions from a lookup table.
// Known codes score confidence 1; unknown codes still produce an "Unknown
// error code" candidate at confidence 0 so the fallback can outrank it.
type ErrorCode struct {
	Regex
	codes map[string]string
}

var _ core.LogicAdapter = (*ErrorCode)(nil)

// NewErrorCode creates the error-code lookup adapter.
func NewErrorCode(optFns ...func(o *ErrorCodeOptions)) *ErrorCode {
	opts := ErrorCodeOptions{Codes: DefaultErrorCodes}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &ErrorCode{
		Regex: Regex{
			Pattern:  regexp.MustCompile(`(?i)#([0-9a-z]{2,})`),
			Keywords: []string{"error", "code", "#"},
		},
		codes: opts.Codes,
	}
}

// Name implements core.LogicAdapter.
func (a *ErrorCode) Name() string { return "error-code" }

// Process implements core.LogicAdapter.
func (a *ErrorCode) Process(_ context.Context, utterance string, _ *core.Session) (core.Response, error) {
	code := strings.ToUpper(a.FirstMatch(utterance))
	if code == "" {
		return core.Response{}, fmt.Errorf("no error code in %q", utterance)
	}
	if message, ok := a.codes[code]; ok {
		return core.NewResponse(message, 1), nil
	}
	return core.NewResponse("Unknown error code", 0), nil
}
