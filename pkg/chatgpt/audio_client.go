package chatgpt

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"github.com/sashabaranov/go-openai"
)

type audioClient struct {
	api   *openai.Client
	model string
}

func NewAudioClient(api *openai.Client, model string) *audioClient {
	if model == "" {
		model = openai.Whisper1
	}
	return &audioClient{
		api:   api,
		model: model,
	}
}

// Transcribe sends one audio file (a whole small source or one segment) to
// the speech-to-text endpoint and returns the plain transcribed text.
// Transient failures are retried with exponential backoff before the error is
// surfaced; the caller decides what a failed segment means for the file.
func (c *audioClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    c.model,
		FilePath: filePath,
	}

	var text string
	operation := func() error {
		resp, err := c.api.CreateTranscription(ctx, req)
		if err != nil {
			return retryable(err)
		}
		text = resp.Text
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(newBackOff(), ctx)); err != nil {
		return "", fmt.Errorf("creating transcription: %w", err)
	}

	return text, nil
}
