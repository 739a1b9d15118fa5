package wire

import (
	"media-review/internal/adaptor"
	"media-review/internal/data/repository"
	"media-review/internal/usecase"
	"media-review/pkg/middleware"
	"media-review/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogRoutes mounts categories and genres. Reads are public, writes are
// staff-only.
func CatalogRoutes(r chi.Router, repo *repository.Repository, service *usecase.Service, tokens *token.Manager, log *zap.Logger) {
	handler := adaptor.NewCatalogHandler(service.Catalog, log)

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", handler.GetCategories)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens, log))
			r.Use(middleware.RequireStaff(repo.User, log))

			r.Post("/", handler.CreateCategory)
			r.Delete("/{slug}", handler.DeleteCategory)
		})
	})

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", handler.GetGenres)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens, log))
			r.Use(middleware.RequireStaff(repo.User, log))

			r.Post("/", handler.CreateGenre)
			r.Delete("/{slug}", handler.DeleteGenre)
		})
	})
}
