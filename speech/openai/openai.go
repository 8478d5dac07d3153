// Package openai implements the speech.Synthesizer contract over the OpenAI
// text-to-speech API.
package openai

import (
	"context"
	"fmt"
	"io"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/parrotlabs/parley/speech"
)

// Options configures the synthesizer (model, voice, API key).
type Options struct {
	Model  openai.SpeechModel
	Voice  openai.AudioSpeechNewParamsVoice
	APIKey string
}

// Synthesizer renders text to MP3 audio via the OpenAI audio/speech endpoint.
type Synthesizer struct {
	client *openai.Client
	opts   Options
}

var _ speech.Synthesizer = (*Synthesizer)(nil)

// NewSynthesizer creates a synthesizer using the official client. The API key
// falls back to the OPENAI_API_KEY environment variable when unset.
func NewSynthesizer(optFns ...func(o *Options)) *Synthesizer {
	opts := Options{
		Model: openai.SpeechModelTTS1,
		Voice: openai.AudioSpeechNewParamsVoiceAlloy,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := openai.NewClient(clientOpts...)

	return &Synthesizer{client: &client, opts: opts}
}

// NewSynthesizerFromClient creates a synthesizer from an existing client.
func NewSynthesizerFromClient(client *openai.Client, optFns ...func(o *Options)) *Synthesizer {
	opts := Options{
		Model: openai.SpeechModelTTS1,
		Voice: openai.AudioSpeechNewParamsVoiceAlloy,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Synthesizer{client: client, opts: opts}
}

// Synthesize implements speech.Synthesizer.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          s.opts.Model,
		Voice:          s.opts.Voice,
		Input:          text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return nil, fmt.Errorf("openai tts error: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openai tts response: %w", err)
	}
	return audio, nil
}

// Format implements speech.Synthesizer.
func (s *Synthesizer) Format() string { return "mp3" }
