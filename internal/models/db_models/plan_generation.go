package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// Generation kinds stored in the reuse cache.
const (
	GenerationKindSuggestions = "suggestions"
	GenerationKindItinerary   = "itinerary"
)

// PlanGeneration stores a validated model response together with a hash-based
// embedding of the prompt that produced it. Before spending a model call, the
// planner looks up a near-identical prior prompt and reuses its payload.
type PlanGeneration struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID       uuid.UUID `gorm:"type:uuid;index"`
	Kind            string    `gorm:"index"`
	Destination     string
	Interests       pq.StringArray  `gorm:"type:text[]"`
	PromptEmbedding pgvector.Vector `gorm:"type:vector(384)"`
	Payload         string          `gorm:"type:jsonb"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
}

func (g *PlanGeneration) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
