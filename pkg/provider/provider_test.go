package provider

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Parallel()

	cause := errors.New("test")
	err := fmt.Errorf("wrapped: %w", &Error{Model: "gemini-test", Err: cause})

	var perr *Error

	assert.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, perr, "unable to generate content with model gemini-test: test")
	assert.False(t, perr.Timeout())
	assert.True(t, (&Error{Err: context.DeadlineExceeded}).Timeout())
}
