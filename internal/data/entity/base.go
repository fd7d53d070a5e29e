package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseSimple is the key and creation time shared by append-only rows
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
