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

// UserRoutes mounts account administration plus the caller's own profile.
// Everything requires a token; administration additionally requires staff.
func UserRoutes(r chi.Router, repo *repository.Repository, service *usecase.Service, tokens *token.Manager, log *zap.Logger) {
	handler := adaptor.NewUserHandler(service.User, log)

	r.Route("/users", func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, log))

		r.Get("/me", handler.GetProfile)
		r.Put("/me", handler.UpdateProfile)
		r.Patch("/me", handler.UpdateProfile)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireStaff(repo.User, log))

			r.Get("/", handler.GetUsers)
			r.Post("/", handler.CreateUser)
			r.Get("/{username}", handler.GetUser)
			r.Put("/{username}", handler.UpdateUser)
			r.Patch("/{username}", handler.UpdateUser)
			r.Delete("/{username}", handler.DeleteUser)
		})
	})
}
