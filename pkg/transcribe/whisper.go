package transcribe

import (
	"bytes"
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Transcriber converts raw audio bytes into plain text
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// WhisperTranscriber implements Transcriber using the OpenAI Whisper API
type WhisperTranscriber struct {
	client   *openai.Client
	model    string
	language string
}

// NewWhisperTranscriber creates a new Whisper-backed transcriber
func NewWhisperTranscriber(apiKey, model, language string) *WhisperTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &WhisperTranscriber{
		client:   openai.NewClient(apiKey),
		model:    model,
		language: language,
	}
}

// Transcribe implements Transcriber
func (t *WhisperTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		Reader:   bytes.NewReader(audio),
		FilePath: "voice.ogg", // name hint only; the payload comes from Reader
		Language: t.language,
	})
	if err != nil {
		return "", fmt.Errorf("whisper request failed: %w", err)
	}
	return resp.Text, nil
}
