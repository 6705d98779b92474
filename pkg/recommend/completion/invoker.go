package completion

import (
	"context"
	"log"

	"conevibes-be/pkg/llm"
)

// Invoker sends the composed system message plus the user-authored turns to
// the model in streaming mode. It performs no buffering, reordering, or
// filtering of the chunk stream; chunks are forwarded exactly as the provider
// emits them.
type Invoker struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func NewInvoker(provider llm.LLMProvider, logger *log.Logger) *Invoker {
	return &Invoker{
		provider: provider,
		logger:   logger,
	}
}

// Invoke builds the outbound message list [system, ...userTurns] and opens
// the stream. Prior assistant turns are never re-sent; the model sees no
// memory of earlier recommendations. An error here means the call could not
// be established and no streaming has begun.
func (i *Invoker) Invoke(ctx context.Context, system llm.Message, history []llm.Message, opts ...llm.Option) (<-chan llm.StreamChunk, error) {
	outbound := append([]llm.Message{system}, FilterUserTurns(history)...)

	i.logger.Printf("[DEBUG] Invoking model with %d messages (%d user turns)", len(outbound), len(outbound)-1)

	return i.provider.StreamChat(ctx, outbound, opts...)
}

// FilterUserTurns keeps only user-authored turns, in their original relative
// order.
func FilterUserTurns(history []llm.Message) []llm.Message {
	filtered := make([]llm.Message, 0, len(history))
	for _, msg := range history {
		if msg.Role == llm.RoleUser {
			filtered = append(filtered, msg)
		}
	}
	return filtered
}
