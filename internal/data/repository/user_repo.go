package repository

import (
	"context"
	"strings"
	"sync"

	"venue-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) *entity.User
	FindByEmail(ctx context.Context, email string) *entity.User
	Count() int
}

type userRepository struct {
	mu    sync.RWMutex
	users []entity.User
	log   *zap.Logger
}

func NewUserRepository(users []entity.User, log *zap.Logger) UserRepository {
	return &userRepository{
		users: users,
		log:   log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) *entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u
		}
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) *entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u
		}
	}
	return nil
}

func (r *userRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}
