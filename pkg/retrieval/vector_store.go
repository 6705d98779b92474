package retrieval

import (
	"context"
	"fmt"
	"log"

	"conevibes-be/internal/repository/contract"
	"conevibes-be/pkg/embedding"
)

// Config encapsulates search parameters
type Config struct {
	TopK      int
	Threshold float64
}

// DefaultConfig returns default search configuration
func DefaultConfig() Config {
	return Config{
		TopK:      5,
		Threshold: 0.35,
	}
}

// VectorStore answers retrieval queries with a pgvector cosine search over the
// context_documents table.
type VectorStore struct {
	repo              contract.ContextDocumentRepository
	embeddingProvider embedding.EmbeddingProvider
	config            Config
	logger            *log.Logger
}

var _ Store = &VectorStore{}

func NewVectorStore(
	repo contract.ContextDocumentRepository,
	embeddingProvider embedding.EmbeddingProvider,
	config Config,
	logger *log.Logger,
) *VectorStore {
	return &VectorStore{
		repo:              repo,
		embeddingProvider: embeddingProvider,
		config:            config,
		logger:            logger,
	}
}

// Query embeds the text and returns the nearest stored chunks, best first.
func (s *VectorStore) Query(ctx context.Context, text string) ([]Snippet, error) {
	embeddingRes, err := s.embeddingProvider.Generate(ctx, text, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	scored, err := s.repo.SearchSimilarWithScore(
		ctx,
		embeddingRes.Embedding.Values,
		s.config.TopK,
		s.config.Threshold,
	)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	s.logger.Printf("[DEBUG] Retrieval query returned %d snippets", len(scored))

	snippets := make([]Snippet, 0, len(scored))
	for _, doc := range scored {
		snippets = append(snippets, Snippet{
			Content: doc.Document.Content,
			Source:  doc.Document.Source,
			Score:   doc.Similarity,
		})
	}
	return snippets, nil
}
