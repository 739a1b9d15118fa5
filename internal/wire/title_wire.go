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

// TitleRoutes mounts the titles resource and its nested reviews. Reads are
// public, title writes are staff-only.
func TitleRoutes(r chi.Router, repo *repository.Repository, service *usecase.Service, tokens *token.Manager, log *zap.Logger) {
	handler := adaptor.NewTitleHandler(service.Title, log)

	r.Route("/titles", func(r chi.Router) {
		r.Get("/", handler.GetTitles)
		r.Get("/{titleID}", handler.GetTitle)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens, log))
			r.Use(middleware.RequireStaff(repo.User, log))

			r.Post("/", handler.CreateTitle)
			r.Put("/{titleID}", handler.UpdateTitle)
			r.Patch("/{titleID}", handler.UpdateTitle)
			r.Delete("/{titleID}", handler.DeleteTitle)
		})

		ReviewRoutes(r, service, tokens, log)
	})
}
