package chatgpt

import (
	"context"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/sashabaranov/go-openai"

	"github.com/dskvich/audio-transcriber/pkg/domain"
)

const enhanceMaxTokens = 2048

type textClient struct {
	api   *openai.Client
	model string
}

func NewTextClient(api *openai.Client, model string) *textClient {
	if model == "" {
		model = "gpt-4.1-mini"
	}
	return &textClient{
		api:   api,
		model: model,
	}
}

// Enhance submits the full transcript with the fixed prompt for the given
// mode and returns the model's rewrite verbatim. Readability keeps all
// substantive content; interview applies the two-speaker labeling scheme.
// Both are instructions to the model, not validated here. A failure yields an
// EnhancementError for that mode only.
func (c *textClient) Enhance(ctx context.Context, transcript domain.Transcript, mode domain.EnhanceMode) (domain.EnhancedTranscript, error) {
	prompt, err := buildPrompt(mode, transcript.Text)
	if err != nil {
		return domain.EnhancedTranscript{}, &domain.EnhancementError{Mode: mode, Err: err}
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0,
		MaxTokens:   enhanceMaxTokens,
	}

	var text string
	operation := func() error {
		resp, err := c.api.CreateChatCompletion(ctx, req)
		if err != nil {
			return retryable(err)
		}
		if len(resp.Choices) == 0 {
			return backoff.Permanent(fmt.Errorf("response contains no choices"))
		}
		text = strings.TrimSpace(resp.Choices[0].Message.Content)
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(newBackOff(), ctx)); err != nil {
		return domain.EnhancedTranscript{}, &domain.EnhancementError{Mode: mode, Err: fmt.Errorf("creating chat completion: %w", err)}
	}

	if text == "" {
		return domain.EnhancedTranscript{}, &domain.EnhancementError{Mode: mode, Err: fmt.Errorf("response is empty")}
	}

	return domain.EnhancedTranscript{Mode: mode, Text: text}, nil
}
