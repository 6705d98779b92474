package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"conevibes-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

func TestParseStreamLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantText string
		wantDone bool
		wantErr  bool
	}{
		{"empty line", "", "", false, false},
		{"comment line", ": keep-alive", "", false, false},
		{"event line", "event: message", "", false, false},
		{"done marker", "data: [DONE]", "", true, false},
		{"content delta", `data: {"choices":[{"delta":{"content":"hello"}}]}`, "hello", false, false},
		{"empty choices", `data: {"choices":[]}`, "", false, false},
		{"no space after colon", `data:{"choices":[{"delta":{"content":"x"}}]}`, "x", false, false},
		{"malformed json", `data: {not json`, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, done, err := parseStreamLine(tt.line)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantDone, done)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStreamChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte(`data: {"choices":[{"delta":{"content":"Try "}}]}` + "\n\n"))
		w.Write([]byte(`data: {"choices":[{"delta":{"content":"Weightless"}}]}` + "\n\n"))
		w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", server.URL, "gpt-4o-mini")
	chunks, err := provider.StreamChat(context.Background(), []llm.Message{
		{Role: "user", Content: "something calming"},
	})
	assert.NoError(t, err)

	var full string
	var done bool
	for chunk := range chunks {
		assert.NoError(t, chunk.Err)
		full += chunk.Content
		done = chunk.Done
	}
	assert.Equal(t, "Try Weightless", full)
	assert.True(t, done)
}

func TestStreamChatUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", server.URL, "gpt-4o-mini")
	_, err := provider.StreamChat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

	var unavailable *llm.UnavailableError
	assert.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "openai", unavailable.Provider)
}

func TestStreamChatTruncatedStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte(`data: {"choices":[{"delta":{"content":"partial"}}]}` + "\n\n"))
		// Connection closes without [DONE]
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", server.URL, "gpt-4o-mini")
	chunks, err := provider.StreamChat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	assert.NoError(t, err)

	var last llm.StreamChunk
	for chunk := range chunks {
		last = chunk
	}
	assert.True(t, last.Done)
	assert.Error(t, last.Err)
}

func TestChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Here Comes the Sun"}},
			},
		})
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", server.URL, "gpt-4o-mini")
	reply, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "sunny morning"}})
	assert.NoError(t, err)
	assert.Equal(t, "Here Comes the Sun", reply)
}

func TestBuildRequestMapsModelRole(t *testing.T) {
	provider := NewOpenAIProvider("k", "http://x", "m")
	req := provider.buildRequest([]llm.Message{
		{Role: "model", Content: "a"},
		{Role: "user", Content: "b"},
	}, false, nil)

	assert.Equal(t, "assistant", req.Messages[0].Role)
	assert.Equal(t, "user", req.Messages[1].Role)
}
