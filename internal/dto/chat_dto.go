package dto

// ChatMessageDTO is one turn of the incoming conversation. Content may be an
// empty string; only the role is mandatory.
type ChatMessageDTO struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content"`
}

// ChatRequest is the inbound body of the streaming recommendation endpoint.
type ChatRequest struct {
	Messages []ChatMessageDTO `json:"messages" validate:"required,min=1,dive"`
}

// StreamChunkPayload is the SSE data payload for one streamed text chunk.
type StreamChunkPayload struct {
	Text string `json:"text"`
}

// StreamDonePayload is the SSE data payload when the stream completed
// normally; Response carries the accumulated full text.
type StreamDonePayload struct {
	Response string `json:"response"`
}

// StreamErrorPayload is the SSE data payload when the stream was cut off. Its
// presence is what lets the UI distinguish a truncated answer from a complete
// one.
type StreamErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
