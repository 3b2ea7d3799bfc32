package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/phrazzld/streamly-api/internal/api/middleware"
	"github.com/phrazzld/streamly-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Route paths mirror the original service, including the doubled
	// segment on user creation.
	r.Route("/users", func(r chi.Router) {
		r.Get("/getAll", app.userHandler.GetAll)
		r.Get("/getByUsername/{username}", app.userHandler.GetByUsername)
		r.Post("/users/create", app.userHandler.Create)
		r.Delete("/delete/{username}", app.userHandler.Delete)
	})

	r.Route("/payments", func(r chi.Router) {
		r.Get("/getAll", app.paymentHandler.GetAll)
		r.Get("/getPaymentById/{id}", app.paymentHandler.GetByID)
		r.Post("/create", app.paymentHandler.Create)
		r.Delete("/delete/{id}", app.paymentHandler.Delete)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
			"message": "Welcome to Streamly API",
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
