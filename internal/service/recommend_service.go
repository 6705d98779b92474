package service

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"conevibes-be/internal/dto"
	"conevibes-be/pkg/llm"
	"conevibes-be/pkg/recommend/completion"
	"conevibes-be/pkg/recommend/prompt"
	"conevibes-be/pkg/recommend/resolver"
)

// IRecommendService runs the recommendation pipeline for one chat request
type IRecommendService interface {
	StreamRecommendation(ctx context.Context, messages []dto.ChatMessageDTO) (<-chan llm.StreamChunk, error)
}

// recommendService wires the per-request pipeline: context resolution, prompt
// composition, streaming model invocation. There is no shared mutable state
// between requests; the composer's catalog block is immutable.
type recommendService struct {
	resolver  *resolver.Resolver
	composer  *prompt.Composer
	invoker   *completion.Invoker
	llmLogger *log.Logger
}

func NewRecommendService(
	contextResolver *resolver.Resolver,
	composer *prompt.Composer,
	invoker *completion.Invoker,
) IRecommendService {
	return &recommendService{
		resolver:  contextResolver,
		composer:  composer,
		invoker:   invoker,
		llmLogger: initLLMLogger(),
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_recommend.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// StreamRecommendation resolves context from the latest turn, composes the
// system prompt, and opens the model stream. Context resolution and the model
// call are sequential: the prompt depends on the resolved context. An error
// here means no streaming has begun and the request fails as a whole.
func (s *recommendService) StreamRecommendation(ctx context.Context, messages []dto.ChatMessageDTO) (<-chan llm.StreamChunk, error) {
	if len(messages) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "messages must not be empty")
	}

	lastMessage := messages[len(messages)-1]

	// Retrieval degradation is handled inside the resolver; an unreachable
	// store yields an empty blob and the recommendation proceeds.
	contextBlob := s.resolver.Resolve(ctx, lastMessage.Content)

	systemMessage := s.composer.Compose(contextBlob)

	history := make([]llm.Message, 0, len(messages))
	for _, msg := range messages {
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	s.llmLogger.Printf("[INFO] Streaming recommendation, history=%d context_bytes=%d", len(history), len(contextBlob))

	chunks, err := s.invoker.Invoke(ctx, systemMessage, history)
	if err != nil {
		s.llmLogger.Printf("[ERROR] Model call could not be established: %v", err)
		return nil, err
	}
	return chunks, nil
}
