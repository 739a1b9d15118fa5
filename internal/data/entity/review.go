package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review carries a score from 1 to 10. One review per (author, title) pair,
// enforced by a unique constraint.
type Review struct {
	BaseSerial
	TitleID   int64     `db:"title_id"`
	AuthorID  uuid.UUID `db:"author_id"`
	Text      string    `db:"text"`
	Score     int       `db:"score"`
	CreatedAt time.Time `db:"created_at"`
}
