package repositories

import (
	"context"
	"log"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

// similarityThreshold is the minimum cosine similarity for a cached
// generation to be considered a match for a new prompt.
const similarityThreshold = 0.95

type PlanCacheRepositoryInterface interface {
	SaveGeneration(ctx context.Context, generation *db_models.PlanGeneration) error
	FindSimilarGeneration(ctx context.Context, kind string, embedding pgvector.Vector) (*db_models.PlanGeneration, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

func NewPlanCacheRepository(db *gorm.DB) PlanCacheRepositoryInterface {
	return &PlanCacheRepository{db: db}
}

type PlanCacheRepository struct {
	db *gorm.DB
}

func (r *PlanCacheRepository) SaveGeneration(ctx context.Context, generation *db_models.PlanGeneration) error {
	return r.db.WithContext(ctx).Create(generation).Error
}

func (r *PlanCacheRepository) FindSimilarGeneration(ctx context.Context, kind string, embedding pgvector.Vector) (*db_models.PlanGeneration, error) {
	var results []db_models.PlanGeneration

	query := `
		SELECT *, (1 - (prompt_embedding <=> $1)) as similarity
		FROM plan_generations
		WHERE kind = $2
		  AND (1 - (prompt_embedding <=> $1)) > $3
		ORDER BY prompt_embedding <=> $1
		LIMIT 1
	`

	err := r.db.WithContext(ctx).Raw(query, embedding.String(), kind, similarityThreshold).Scan(&results).Error
	if err != nil {
		log.Printf("Error querying similar generations: %v", err)
		return nil, err
	}

	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

func (r *PlanCacheRepository) DeleteBySessionID(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&db_models.PlanGeneration{}).Error
}
