package request

type TitleRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,min=1000,max=9999"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Genre       []string `json:"genre,omitempty"`
}

type UpdateTitleRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,min=1000,max=9999"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Genre       []string `json:"genre,omitempty"`
}

// TitleListQuery mirrors the supported query params on GET /titles.
type TitleListQuery struct {
	Category string
	Genre    string
	Name     string
	Year     *int
}
