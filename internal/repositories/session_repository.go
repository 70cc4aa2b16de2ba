package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type SessionRepositoryInterface interface {
	CreateSession(ctx context.Context, session *db_models.TripSession) error
	GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*db_models.TripSession, error)
	UpdateSession(ctx context.Context, session *db_models.TripSession) error
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
}

func NewSessionRepository(db *gorm.DB) SessionRepositoryInterface {
	return &SessionRepository{db: db}
}

type SessionRepository struct {
	db *gorm.DB
}

func (r *SessionRepository) CreateSession(ctx context.Context, session *db_models.TripSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *SessionRepository) GetSessionByID(ctx context.Context, sessionID uuid.UUID) (*db_models.TripSession, error) {
	var session db_models.TripSession
	err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) UpdateSession(ctx context.Context, session *db_models.TripSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.TripSession{}, "id = ?", sessionID).Error
}
