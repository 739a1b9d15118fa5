package entity

type Title struct {
	BaseSerial
	Name        string  `db:"name"`
	Year        *int    `db:"year"`
	Description *string `db:"description"`
	CategoryID  *int64  `db:"category_id"`

	// Derived on read: mean review score, nil when the title has no reviews.
	Rating *float64 `db:"rating"`

	// Populated by the repository from the join tables.
	Category *Category
	Genres   []*Genre
}
