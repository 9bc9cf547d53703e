// Package generate defines the capability interfaces for the external
// generation APIs the product integrates with: text-to-speech (Eleven Labs)
// and generative text (Gemini). Both adapters are outlines; concrete
// clients land when the upstream integrations are built.
package generate

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotImplemented = errors.New("not implemented")

// SpeechOptions selects voice and output format for synthesis. A zero
// value means the provider's account defaults.
type SpeechOptions struct {
	VoiceID string
	Format  string
}

// GenerateOptions overrides the model used for a single prompt.
type GenerateOptions struct {
	Model string
}

// TextToSpeech synthesizes speech from text in a single synchronous call.
// No retry or streaming contract is defined.
type TextToSpeech interface {
	Synthesize(ctx context.Context, text string, opts SpeechOptions) ([]byte, error)
}

// TextGenerator produces text from a prompt in a single synchronous call.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

type elevenLabs struct{}

// NewElevenLabsSpeech returns the Eleven Labs text-to-speech adapter.
func NewElevenLabsSpeech() TextToSpeech {
	return &elevenLabs{}
}

func (e *elevenLabs) Synthesize(ctx context.Context, text string, opts SpeechOptions) ([]byte, error) {
	return nil, fmt.Errorf("eleven labs speech: %w", ErrNotImplemented)
}

type gemini struct{}

// NewGeminiGenerator returns the Gemini text-generation adapter.
func NewGeminiGenerator() TextGenerator {
	return &gemini{}
}

func (g *gemini) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	return "", fmt.Errorf("gemini generate: %w", ErrNotImplemented)
}
