package repository

import (
	"context"
	"sync"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session)
	FindValidSession(ctx context.Context, token string) *entity.Session
	Revoke(ctx context.Context, token string) bool
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
	log      *zap.Logger
}

func NewSessionRepository(log *zap.Logger) SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*entity.Session),
		log:      log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.Token.String()] = session
}

func (r *sessionRepository) FindValidSession(ctx context.Context, token string) *entity.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok {
		return nil
	}
	if session.RevokedAt != nil {
		return nil
	}
	if time.Now().After(session.ExpiresAt) {
		return nil
	}

	s := *session
	return &s
}

func (r *sessionRepository) Revoke(ctx context.Context, token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[token]
	if !ok || session.RevokedAt != nil {
		return false
	}

	now := time.Now()
	session.RevokedAt = &now
	return true
}

// NewSession builds a session entity for a user with the given lifetime.
func NewSession(userID uuid.UUID, expiry time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: now.Add(expiry),
	}
}
