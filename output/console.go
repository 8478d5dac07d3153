package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/parrotlabs/parley/core"
)

// Console writes the winning response text to a writer, one line per turn.
type Console struct {
	w io.Writer
}

var _ core.OutputSink = (*Console)(nil)

// NewConsole creates a console sink. A nil writer defaults to stdout.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

// Name implements core.OutputSink.
func (c *Console) Name() string { return "console" }

// Handle implements core.OutputSink.
func (c *Console) Handle(_ context.Context, response core.Response) error {
	_, err := fmt.Fprintln(c.w, response.Text)
	return err
}
