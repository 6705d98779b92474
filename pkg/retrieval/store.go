package retrieval

import "context"

// Snippet is one ranked piece of contextual text returned by the store. The
// pipeline treats snippets as opaque; ranking and count are store-defined.
type Snippet struct {
	Content string
	Source  string
	Score   float64
}

// Store is the queryable document store consumed by the context resolver.
type Store interface {
	Query(ctx context.Context, text string) ([]Snippet, error)
}
