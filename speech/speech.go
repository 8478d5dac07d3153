// Package speech defines the synthesis boundary used by the speech output
// sink: a Synthesizer that renders text to audio bytes, a Player that emits
// stored audio, text normalization, and a content-addressed file cache that
// avoids re-synthesizing identical responses.
package speech

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
)

// Synthesizer renders normalized text to an audio byte stream. Format names
// the audio container the bytes use, e.g. "mp3" or "wav"; it doubles as the
// cache file extension.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Format() string
}

// Player emits a stored audio file. Playback hardware is outside the engine
// boundary, so implementations range from no-ops to shelling out.
type Player interface {
	Play(ctx context.Context, path string) error
}

// NoOpPlayer discards playback requests. Useful for servers without audio
// output and for tests.
type NoOpPlayer struct{}

// Play implements Player.
func (NoOpPlayer) Play(context.Context, string) error { return nil }

// ExecPlayer plays audio by running an external command (e.g. "mpg123" or
// "afplay") with the file path appended to its arguments.
type ExecPlayer struct {
	command string
	args    []string
}

// NewExecPlayer creates a player shelling out to the given command.
func NewExecPlayer(command string, args ...string) *ExecPlayer {
	return &ExecPlayer{command: command, args: args}
}

// Play implements Player.
func (p *ExecPlayer) Play(ctx context.Context, path string) error {
	args := make([]string, 0, len(p.args)+1)
	args = append(args, p.args...)
	args = append(args, path)
	return exec.CommandContext(ctx, p.command, args...).Run()
}

var normalizePattern = regexp.MustCompile(`[^\w.,?!]+`)

// Normalize strips everything except word characters and ". , ? !" from the
// text, collapsing runs into single spaces. Cache keys are derived from the
// normalized form so responses differing only in stripped characters share
// one audio file.
func Normalize(text string) string {
	return strings.TrimSpace(normalizePattern.ReplaceAllString(text, " "))
}
