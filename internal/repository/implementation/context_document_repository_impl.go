package implementation

import (
	"context"

	"conevibes-be/internal/entity"
	"conevibes-be/internal/mapper"
	"conevibes-be/internal/model"
	"conevibes-be/internal/repository/contract"
	"conevibes-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ContextDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContextDocumentMapper
}

func NewContextDocumentRepository(db *gorm.DB) contract.ContextDocumentRepository {
	return &ContextDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewContextDocumentMapper(),
	}
}

func (r *ContextDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContextDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.ContextDocument) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContextDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContextDocument, error) {
	var models []model.ContextDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	docs := make([]*entity.ContextDocument, len(models))
	for i := range models {
		docs[i] = r.mapper.ToEntity(&models[i])
	}
	return docs, nil
}

func (r *ContextDocumentRepositoryImpl) DeleteBySource(ctx context.Context, source string) error {
	return r.db.WithContext(ctx).Where("source = ?", source).Delete(&model.ContextDocument{}).Error
}

func (r *ContextDocumentRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.ContextDocument{}).Error
}

func (r *ContextDocumentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ContextDocument{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns chunks with similarity scores, filtered by threshold.
// Cosine distance in pgvector is 1 - cosine_similarity, so we compute
// 1 - (embedding_value <=> query_vector) to get the similarity back.
func (r *ContextDocumentRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredContextDocument, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.ContextDocument
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("context_documents").
		Select("context_documents.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredContextDocument, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredContextDocument{
			Document:   r.mapper.ToEntity(&res.ContextDocument),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
