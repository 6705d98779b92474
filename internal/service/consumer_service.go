package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"conevibes-be/internal/dto"
	"conevibes-be/internal/entity"
	"conevibes-be/internal/repository/contract"
	"conevibes-be/pkg/embedding"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService embeds published document chunks and stores them in the
// retrieval index.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	docRepo           contract.ContextDocumentRepository
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	docRepo contract.ContextDocumentRepository,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		docRepo:           docRepo,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedChunkMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Embedding chunk %d of source %s", payload.ChunkIndex, payload.Source)

	embeddingRes, err := cs.embeddingProvider.Generate(ctx, payload.Content, embedding.TaskRetrievalDocument)
	if err != nil {
		log.Printf("[ERROR] Embedding failed for %s[%d]: %v", payload.Source, payload.ChunkIndex, err)
		msg.Nack() // Retriable
		return
	}

	doc := entity.ContextDocument{
		Id:         uuid.New(),
		Source:     payload.Source,
		Title:      payload.Title,
		Content:    payload.Content,
		ChunkIndex: payload.ChunkIndex,
		Embedding:  embeddingRes.Embedding.Values,
		CreatedAt:  time.Now(),
	}

	if err := cs.docRepo.Create(ctx, &doc); err != nil {
		log.Printf("[ERROR] Failed to store chunk %s[%d]: %v", payload.Source, payload.ChunkIndex, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
