package entity

type Genre struct {
	BaseSerial
	Name string `db:"name"`
	Slug string `db:"slug"`
}
