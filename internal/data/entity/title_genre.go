package entity

type TitleGenre struct {
	TitleID int64 `db:"title_id"`
	GenreID int64 `db:"genre_id"`
}
