// Package chatbot holds the completion providers the send-message flow
// talks to. Each turn is stateless: the provider receives a single prompt
// with no prior chat history.
package chatbot

import (
	"context"
	"errors"
)

// ErrSafetyBlocked is returned when the provider rejects the prompt on
// content-safety grounds, so the caller can store a safety-specific
// fallback instead of the generic one.
var ErrSafetyBlocked = errors.New("prompt blocked by provider safety filters")

// Provider defines the contract for any completion backend.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
