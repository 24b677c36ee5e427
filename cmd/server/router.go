package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/ntua-el20123/fridge-mate-app/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	r.Route("/api", func(r chi.Router) {
		if app.tokenService != nil {
			r.Use(apiMiddleware.NewAuthMiddleware(app.tokenService).Authenticate)
		}
		r.Post("/generate", app.generateHandler.Generate)
	})

	r.Get("/health", app.generateHandler.Health)

	return r
}
