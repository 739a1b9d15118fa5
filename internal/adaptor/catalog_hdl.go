package adaptor

import (
	"net/http"

	"media-review/internal/dto/request"
	"media-review/internal/usecase"
	"media-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler serves the category and genre endpoints. The two resources
// share the same shape and rules, so one handler covers both.
type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetCategories handles GET /categories
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	page := paginationFromQuery(r)

	categories, err := h.service.GetCategories(r.Context(), search, page)
	if err != nil {
		h.log.Error("Failed to list categories", zap.Error(err))
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved successfully", categories)
}

// CreateCategory handles POST /categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		h.log.Warn("Failed to create category", zap.Error(err), zap.String("slug", req.Slug))
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Category created successfully", category)
}

// DeleteCategory handles DELETE /categories/{slug}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.service.DeleteCategory(r.Context(), slug); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}

// GetGenres handles GET /genres
func (h *CatalogHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	page := paginationFromQuery(r)

	genres, err := h.service.GetGenres(r.Context(), search, page)
	if err != nil {
		h.log.Error("Failed to list genres", zap.Error(err))
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved successfully", genres)
}

// CreateGenre handles POST /genres
func (h *CatalogHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		h.log.Warn("Failed to create genre", zap.Error(err), zap.String("slug", req.Slug))
		handleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Genre created successfully", genre)
}

// DeleteGenre handles DELETE /genres/{slug}
func (h *CatalogHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	if err := h.service.DeleteGenre(r.Context(), slug); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
