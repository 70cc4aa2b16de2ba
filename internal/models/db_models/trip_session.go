package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TripSession persists one intake-wizard session: the basic details step plus
// the preferences step. Generated plans live in PlanGeneration, not here.
type TripSession struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Destination        string
	StartDate          time.Time
	EndDate            time.Time
	DurationDays       int
	Budget             string
	Interests          pq.StringArray `gorm:"type:text[]"`
	DietaryPreferences pq.StringArray `gorm:"type:text[]"`
	AccommodationType  string
	MobilityConcerns   string
	PreferredPace      int
	MaxWalkingHours    int
	CreatedAt          int64          `gorm:"autoCreateTime"`
	UpdatedAt          int64          `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (s *TripSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now().Unix()
	s.CreatedAt = now
	s.UpdatedAt = now
	return nil
}

func (s *TripSession) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now().Unix()
	return nil
}
