package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContextDocument is one embedded chunk of contextual text in the retrieval
// store.
type ContextDocument struct {
	Id         uuid.UUID
	Source     string
	Title      string
	Content    string
	ChunkIndex int
	Embedding  []float32
	Metadata   map[string]interface{}
	CreatedAt  time.Time
}
