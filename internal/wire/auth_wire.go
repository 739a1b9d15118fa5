package wire

import (
	"media-review/internal/adaptor"
	"media-review/internal/usecase"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthRoutes mounts the public registration and token endpoints.
func AuthRoutes(r chi.Router, service *usecase.Service, log *zap.Logger) {
	handler := adaptor.NewAuthHandler(service.Auth, log)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/email", handler.Register)
		r.Post("/token", handler.ObtainToken)
	})
}
