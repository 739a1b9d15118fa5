package entity

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	BaseSerial
	ReviewID  int64     `db:"review_id"`
	AuthorID  uuid.UUID `db:"author_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}
