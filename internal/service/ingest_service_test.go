package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"conevibes-be/internal/dto"
	"conevibes-be/internal/entity"
	"conevibes-be/internal/repository/contract"
	"conevibes-be/internal/repository/specification"
	"conevibes-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
)

type fakeDocRepo struct {
	mu      sync.Mutex
	docs    []*entity.ContextDocument
	deleted []string
	cleared bool
}

func (f *fakeDocRepo) Create(ctx context.Context, doc *entity.ContextDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeDocRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContextDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.docs, nil
}

func (f *fakeDocRepo) DeleteBySource(ctx context.Context, source string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, source)
	return nil
}

func (f *fakeDocRepo) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = true
	f.docs = nil
	return nil
}

func (f *fakeDocRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.docs)), nil
}

func (f *fakeDocRepo) SearchSimilarWithScore(ctx context.Context, emb []float32, limit int, threshold float64) ([]*contract.ScoredContextDocument, error) {
	return nil, nil
}

func (f *fakeDocRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs)
}

type fakeEmbedding struct{}

func (f *fakeEmbedding) Generate(ctx context.Context, text, taskType string) (*embedding.EmbeddingResponse, error) {
	res := &embedding.EmbeddingResponse{}
	res.Embedding.Values = []float32{0.1, 0.2, 0.3}
	return res, nil
}

func TestIngestPublishesChunksAndConsumerStoresThem(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	repo := &fakeDocRepo{}
	topic := "TEST_EMBED_TOPIC"

	consumer := NewConsumerService(pubSub, topic, repo, &fakeEmbedding{})
	assert.NoError(t, consumer.Consume(context.Background()))

	ingest := NewIngestService(pubSub, topic, repo, 50, 10)
	content := strings.Repeat("context about rainy day music. ", 10)

	res, err := ingest.IngestDocument(context.Background(), &dto.IngestDocumentRequest{
		Source:  "docs/rainy",
		Title:   "Rainy Day Guide",
		Content: content,
	})
	assert.NoError(t, err)
	assert.Equal(t, "docs/rainy", res.Source)
	assert.Greater(t, res.Chunks, 1)

	// Previous chunks for the source were dropped before publishing
	assert.Contains(t, repo.deleted, "docs/rainy")

	// The consumer runs async; wait for it to drain the topic
	assert.Eventually(t, func() bool {
		return repo.count() == res.Chunks
	}, 3*time.Second, 20*time.Millisecond)

	docs, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	for _, doc := range docs {
		assert.Equal(t, "docs/rainy", doc.Source)
		assert.Equal(t, "Rainy Day Guide", doc.Title)
		assert.NotEmpty(t, doc.Embedding)
	}
}

func TestClearIndex(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	repo := &fakeDocRepo{}

	ingest := NewIngestService(pubSub, "t", repo, 100, 10)
	assert.NoError(t, ingest.ClearIndex(context.Background()))
	assert.True(t, repo.cleared)
}
