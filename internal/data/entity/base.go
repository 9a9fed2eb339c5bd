package entity

import (
	"time"

	"github.com/google/uuid"
)

type Base struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BaseSimple struct {
	ID        uuid.UUID
	CreatedAt time.Time
}
