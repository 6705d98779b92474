package contract

import (
	"context"

	"conevibes-be/internal/entity"
	"conevibes-be/internal/repository/specification"
)

// ScoredContextDocument pairs a stored chunk with its cosine similarity to a
// query vector.
type ScoredContextDocument struct {
	Document   *entity.ContextDocument
	Similarity float64
}

type ContextDocumentRepository interface {
	Create(ctx context.Context, doc *entity.ContextDocument) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContextDocument, error)
	DeleteBySource(ctx context.Context, source string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)

	// SearchSimilarWithScore returns the chunks nearest to the query vector,
	// best first, filtered by a minimum similarity threshold.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredContextDocument, error)
}
