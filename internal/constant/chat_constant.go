package constant

// SSE event names for the chat stream.
const (
	StreamEventChunk = "chunk"
	StreamEventDone  = "done"
	StreamEventError = "error"
)
