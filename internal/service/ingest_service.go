package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"conevibes-be/internal/dto"
	"conevibes-be/internal/repository/contract"
	"conevibes-be/pkg/utils"
)

// IIngestService accepts contextual documents, splits them, and publishes one
// embed message per chunk for the consumer to process asynchronously.
type IIngestService interface {
	IngestDocument(ctx context.Context, request *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error)
	ClearIndex(ctx context.Context) error
}

type ingestService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	docRepo   contract.ContextDocumentRepository
	chunkSize int
	overlap   int
}

func NewIngestService(
	pubSub *gochannel.GoChannel,
	topicName string,
	docRepo contract.ContextDocumentRepository,
	chunkSize int,
	overlap int,
) IIngestService {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if overlap < 0 {
		overlap = 100
	}
	return &ingestService{
		pubSub:    pubSub,
		topicName: topicName,
		docRepo:   docRepo,
		chunkSize: chunkSize,
		overlap:   overlap,
	}
}

func (s *ingestService) IngestDocument(ctx context.Context, request *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error) {
	// Re-ingesting a source replaces its chunks
	if err := s.docRepo.DeleteBySource(ctx, request.Source); err != nil {
		return nil, err
	}

	chunks := utils.SplitText(request.Content, s.chunkSize, s.overlap)

	for i, chunk := range chunks {
		payload, err := json.Marshal(dto.PublishEmbedChunkMessage{
			Source:     request.Source,
			Title:      request.Title,
			Content:    chunk,
			ChunkIndex: i,
		})
		if err != nil {
			return nil, err
		}

		msg := message.NewMessage(watermill.NewUUID(), payload)
		if err := s.pubSub.Publish(s.topicName, msg); err != nil {
			return nil, err
		}
	}

	return &dto.IngestDocumentResponse{
		Source: request.Source,
		Chunks: len(chunks),
	}, nil
}

func (s *ingestService) ClearIndex(ctx context.Context) error {
	return s.docRepo.DeleteAll(ctx)
}
