package llm

import (
	"context"
)

// Chat message roles as they appear on the wire.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string
	Content string
}

// StreamChunk is one increment of a streamed completion. Done marks the final
// chunk; Err is set when the stream terminated abnormally after it began.
type StreamChunk struct {
	Content string
	Done    bool
	Err     error
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the complete response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// StreamChat sends a chat history to the model and returns an incremental
	// stream of chunks. The connection is established before StreamChat
	// returns: a non-nil error means no stream was started and the request
	// failed outright. After the channel is returned, a mid-stream failure is
	// delivered as a final chunk with Err set. Cancelling ctx tears down the
	// upstream call and closes the channel.
	StreamChat(ctx context.Context, history []Message, options ...Option) (<-chan StreamChunk, error)
}

// UnavailableError reports that the model backend rejected or failed the call
// before any streaming began.
type UnavailableError struct {
	Provider string
	Err      error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return "llm provider " + e.Provider + " unavailable"
	}
	return "llm provider " + e.Provider + " unavailable: " + e.Err.Error()
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
