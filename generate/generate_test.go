package generate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdaptersAreNotImplemented(t *testing.T) {
	ctx := context.Background()

	audio, err := NewElevenLabsSpeech().Synthesize(ctx, "hello", SpeechOptions{})
	assert.Nil(t, audio)
	assert.True(t, errors.Is(err, ErrNotImplemented))

	text, err := NewGeminiGenerator().Generate(ctx, "hello", GenerateOptions{})
	assert.Empty(t, text)
	assert.True(t, errors.Is(err, ErrNotImplemented))
}
