package dto

// IngestDocumentRequest submits one contextual document for splitting and
// asynchronous embedding.
type IngestDocumentRequest struct {
	Source  string `json:"source" validate:"required"`
	Title   string `json:"title"`
	Content string `json:"content" validate:"required"`
}

type IngestDocumentResponse struct {
	Source string `json:"source"`
	Chunks int    `json:"chunks"`
}

// PublishEmbedChunkMessage is the payload published per chunk on the embed
// topic.
type PublishEmbedChunkMessage struct {
	Source     string `json:"source"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	ChunkIndex int    `json:"chunk_index"`
}

type ClearIndexResponse struct {
	Cleared bool `json:"cleared"`
}
