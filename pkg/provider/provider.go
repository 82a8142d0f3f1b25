// Package provider relays prompts to a generative-text service.
package provider

import (
	"context"
	"errors"
	"fmt"
)

var ErrEmptyResponse = errors.New("provider returned no text")

// Provider generates a text completion for a prompt. Implementations
// must be safe for concurrent use.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Error wraps every failure coming from a provider call.
type Error struct {
	Model string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("unable to generate content with model %s: %s", e.Model, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}
