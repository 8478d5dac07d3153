package output

import (
	"context"
	"fmt"

	"github.com/parrotlabs/parley/core"
	"github.com/parrotlabs/parley/logging"
	"github.com/parrotlabs/parley/speech"
)

// SpeechOptions configures a speech sink.
type SpeechOptions struct {
	// Player emits the cached audio. Defaults to NoOpPlayer.
	Player speech.Player
	// Logger receives cache hit/miss debug lines.
	Logger logging.Logger
}

// Speech synthesizes the winning response through a content-addressed cache
// and plays the stored audio. The response text is normalized, hashed and
// used as the cache key; a hit skips synthesis entirely, a miss synthesizes
// and persists before playback.
type Speech struct {
	synth  speech.Synthesizer
	cache  *speech.Cache
	player speech.Player
	logger logging.Logger
}

var _ core.OutputSink = (*Speech)(nil)

// NewSpeech creates a speech sink over a synthesizer and cache.
func NewSpeech(synth speech.Synthesizer, cache *speech.Cache, optFns ...func(o *SpeechOptions)) *Speech {
	opts := SpeechOptions{Player: speech.NoOpPlayer{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Player == nil {
		opts.Player = speech.NoOpPlayer{}
	}

	return &Speech{
		synth:  synth,
		cache:  cache,
		player: opts.Player,
		logger: logging.OrNoOp(opts.Logger),
	}
}

// Name implements core.OutputSink.
func (s *Speech) Name() string { return "speech" }

// Handle implements core.OutputSink.
func (s *Speech) Handle(ctx context.Context, response core.Response) error {
	text := speech.Normalize(response.Text)
	key := speech.Key(text)
	ext := s.synth.Format()

	path, ok := s.cache.Lookup(key, ext)
	if !ok {
		s.logger.Debug("synthesis cache miss", "key", key)
		audio, err := s.synth.Synthesize(ctx, text)
		if err != nil {
			return fmt.Errorf("synthesize response: %w", err)
		}
		path, err = s.cache.Store(key, ext, audio)
		if err != nil {
			return fmt.Errorf("cache synthesized audio: %w", err)
		}
	} else {
		s.logger.Debug("synthesis cache hit", "key", key)
	}

	return s.player.Play(ctx, path)
}
