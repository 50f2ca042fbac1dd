// Package ai holds the mental-health chat companion: conversation inference
// with retries, falling back to a static apology when the model is
// unreachable.
package ai

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wellvest-go-be/models"
)

// maxAttempts bounds inference retries; backoff grows linearly with the
// attempt number.
const maxAttempts = 3

// FallbackReply is returned when every inference attempt fails.
const FallbackReply = "I'm sorry, I'm having trouble responding right now. " +
	"Please try again in a moment — I'm still here for you."

// Inference generates a reply from the conversation history plus the new
// user message.
type Inference interface {
	Generate(ctx context.Context, history []models.ChatMessage, message string) (string, error)
}

// Companion wraps an Inference with retry and fallback behavior.
type Companion struct {
	inference Inference
	log       *zap.Logger
	sleep     func(time.Duration)
}

// Option configures a Companion.
type Option func(*Companion)

// WithLogger sets the diagnostic logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Companion) { c.log = log }
}

// WithSleep overrides the backoff sleep. Tests use it to avoid real delays.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Companion) { c.sleep = sleep }
}

// NewCompanion wraps the inference backend.
func NewCompanion(inference Inference, opts ...Option) *Companion {
	c := &Companion{
		inference: inference,
		log:       zap.NewNop(),
		sleep:     time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send asks the model for a reply, retrying with linear backoff (1s × attempt
// number) up to 3 attempts. When all attempts fail, the static apology is
// returned instead of an error so the conversation never dead-ends.
func (c *Companion) Send(ctx context.Context, history []models.ChatMessage, message string) string {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		reply, err := c.inference.Generate(ctx, history, message)
		if err == nil {
			return reply
		}
		c.log.Warn("inference attempt failed",
			zap.Int("attempt", attempt), zap.Error(err))
		if attempt < maxAttempts {
			c.sleep(time.Duration(attempt) * time.Second)
		}
	}
	return FallbackReply
}
