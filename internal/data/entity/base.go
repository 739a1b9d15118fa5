package entity

import (
	"time"

	"github.com/google/uuid"
)

type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BaseSerial is shared by catalog rows keyed by a sequence. Listing endpoints
// order by this ID ascending.
type BaseSerial struct {
	ID int64 `db:"id"`
}
