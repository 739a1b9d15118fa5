package response

import (
	"media-review/internal/data/entity"
)

// TitleResponse expands category and genres into nested {name, slug} objects.
// Year is a plain 4-digit integer, rating the mean review score or null.
type TitleResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Year        *int              `json:"year"`
	Rating      *float64          `json:"rating"`
	Description *string           `json:"description"`
	Category    *CategoryResponse `json:"category"`
	Genre       []GenreResponse   `json:"genre"`
}

// Helper converter
func TitleToResponse(title *entity.Title) TitleResponse {
	resp := TitleResponse{
		ID:          title.ID,
		Name:        title.Name,
		Year:        title.Year,
		Rating:      title.Rating,
		Description: title.Description,
		Genre:       []GenreResponse{},
	}

	if title.Category != nil {
		category := CategoryToResponse(title.Category)
		resp.Category = &category
	}

	for _, genre := range title.Genres {
		resp.Genre = append(resp.Genre, GenreToResponse(genre))
	}

	return resp
}
