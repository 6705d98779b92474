package openai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"conevibes-be/pkg/llm"
)

// OpenAIProvider implements LLMProvider for OpenAI and OpenAI-compatible chat
// completion APIs (OpenRouter, Together AI, local gateways).
type OpenAIProvider struct {
	APIKey    string
	BaseURL   string
	ModelName string
	Client    *http.Client
}

var _ llm.LLMProvider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, baseURL, modelName string) *OpenAIProvider {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAIProvider{
		APIKey:    apiKey,
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature *float64                `json:"temperature,omitempty"`
	MaxTokens   *int                    `json:"max_tokens,omitempty"`
	Stream      bool                    `json:"stream,omitempty"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

type chatCompletionStreamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
}

func (p *OpenAIProvider) buildRequest(history []llm.Message, stream bool, opts []llm.Option) chatCompletionRequest {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]chatCompletionMessage, 0, len(history))
	for _, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages = append(messages, chatCompletionMessage{Role: role, Content: msg.Content})
	}

	model := p.ModelName
	if options.Model != "" {
		model = options.Model
	}

	req := chatCompletionRequest{
		Model:    model,
		Messages: messages,
		Stream:   stream,
	}
	if options.Temperature > 0 {
		req.Temperature = &options.Temperature
	}
	if options.MaxTokens > 0 {
		req.MaxTokens = &options.MaxTokens
	}
	return req
}

func (p *OpenAIProvider) send(ctx context.Context, payload chatCompletionRequest, stream bool) (*http.Response, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := p.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	if stream {
		req.Header.Set("Accept", "text/event-stream")
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("openai error: status %d, body: %s", resp.StatusCode, string(body))
	}
	return resp, nil
}

// --- Interface Implementation ---

func (p *OpenAIProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	resp, err := p.send(ctx, p.buildRequest(history, false, opts), false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai response contained no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// StreamChat opens a streaming chat call. The API responds with Server-Sent
// Events: "data: {json}" lines terminated by "data: [DONE]".
func (p *OpenAIProvider) StreamChat(ctx context.Context, history []llm.Message, opts ...llm.Option) (<-chan llm.StreamChunk, error) {
	resp, err := p.send(ctx, p.buildRequest(history, true, opts), true)
	if err != nil {
		return nil, &llm.UnavailableError{Provider: "openai", Err: err}
	}

	chunks := make(chan llm.StreamChunk, 10)
	go func() {
		defer close(chunks)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			content, done, err := parseStreamLine(scanner.Text())
			if err != nil {
				chunks <- llm.StreamChunk{Done: true, Err: err}
				return
			}
			if done {
				chunks <- llm.StreamChunk{Done: true}
				return
			}
			if content != "" {
				select {
				case chunks <- llm.StreamChunk{Content: content}:
				case <-ctx.Done():
					return
				}
			}
		}

		if err := scanner.Err(); err != nil {
			chunks <- llm.StreamChunk{Done: true, Err: fmt.Errorf("read stream: %w", err)}
			return
		}
		chunks <- llm.StreamChunk{Done: true, Err: io.ErrUnexpectedEOF}
	}()

	return chunks, nil
}

// parseStreamLine extracts the delta content from one SSE line. Comment lines
// and event names are skipped; "[DONE]" signals normal completion.
func parseStreamLine(line string) (content string, done bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || !strings.HasPrefix(line, "data:") {
		return "", false, nil
	}

	data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
	if data == "[DONE]" {
		return "", true, nil
	}

	var chunk chatCompletionStreamChunk
	if err := json.Unmarshal([]byte(data), &chunk); err != nil {
		return "", false, fmt.Errorf("decode stream line: %w", err)
	}
	if len(chunk.Choices) == 0 {
		return "", false, nil
	}
	return chunk.Choices[0].Delta.Content, false, nil
}
