package mapper

import (
	"encoding/json"

	"conevibes-be/internal/entity"
	"conevibes-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type ContextDocumentMapper struct{}

func NewContextDocumentMapper() *ContextDocumentMapper {
	return &ContextDocumentMapper{}
}

func (m *ContextDocumentMapper) ToEntity(d *model.ContextDocument) *entity.ContextDocument {
	if d == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(d.Metadata) > 0 {
		// Best effort; malformed metadata is dropped, not fatal
		_ = json.Unmarshal(d.Metadata, &metadata)
	}

	return &entity.ContextDocument{
		Id:         d.Id,
		Source:     d.Source,
		Title:      d.Title,
		Content:    d.Content,
		ChunkIndex: d.ChunkIndex,
		Embedding:  d.EmbeddingValue.Slice(),
		Metadata:   metadata,
		CreatedAt:  d.CreatedAt,
	}
}

func (m *ContextDocumentMapper) ToModel(d *entity.ContextDocument) *model.ContextDocument {
	if d == nil {
		return nil
	}

	var metadata datatypes.JSON
	if d.Metadata != nil {
		if raw, err := json.Marshal(d.Metadata); err == nil {
			metadata = raw
		}
	}

	return &model.ContextDocument{
		Id:             d.Id,
		Source:         d.Source,
		Title:          d.Title,
		Content:        d.Content,
		ChunkIndex:     d.ChunkIndex,
		EmbeddingValue: pgvector.NewVector(d.Embedding),
		Metadata:       metadata,
		CreatedAt:      d.CreatedAt,
	}
}
