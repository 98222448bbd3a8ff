package chatgpt

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// NewAPIClient builds the go-openai client shared by the audio and text
// clients. The key is injected here once; nothing reads the environment past
// startup. baseURL overrides the API endpoint and is used by tests, empty
// keeps the default. The timeout bounds every request so a stalled endpoint
// cannot hang a batch.
func NewAPIClient(token, baseURL string, timeout time.Duration) (*openai.Client, error) {
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}

	cfg := openai.DefaultConfig(token)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return openai.NewClientWithConfig(cfg), nil
}
