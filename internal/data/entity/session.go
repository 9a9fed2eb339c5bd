package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	BaseSimple
	UserID    uuid.UUID
	Token     uuid.UUID
	ExpiresAt time.Time
	RevokedAt *time.Time
}
