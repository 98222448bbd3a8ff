package chatgpt

import (
	"errors"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/sashabaranov/go-openai"
)

// maxRetries bounds the extra attempts made after a transient failure.
const maxRetries = 3

func newBackOff() backoff.BackOff {
	return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)
}

// retryable marks only transient failures for another attempt: rate limits
// and server-side errors. Any other API error is permanent; transport errors
// are worth retrying.
func retryable(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= http.StatusInternalServerError {
			return err
		}
		return backoff.Permanent(err)
	}
	return err
}
