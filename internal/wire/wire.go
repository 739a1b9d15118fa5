package wire

import (
	"net/http"

	"media-review/internal/data/repository"
	"media-review/internal/usecase"
	"media-review/pkg/middleware"
	"media-review/pkg/token"
	"media-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring assembles the HTTP surface: global middleware, health check, and
// the /api/v1 resource routes.
func Wiring(
	repo *repository.Repository,
	service *usecase.Service,
	tokens *token.Manager,
	log *zap.Logger,
) *App {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.MaybeAuthenticate(tokens, log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})

	r.Route("/api/v1", func(api chi.Router) {
		AuthRoutes(api, service, log)
		UserRoutes(api, repo, service, tokens, log)
		CatalogRoutes(api, repo, service, tokens, log)
		TitleRoutes(api, repo, service, tokens, log)
	})

	return &App{Router: r}
}
