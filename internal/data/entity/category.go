package entity

type Category struct {
	BaseSerial
	Name string `db:"name"`
	Slug string `db:"slug"`
}
