package main

import (
	"log/slog"

	"github.com/phrazzld/streamly-api/internal/api"
	"github.com/phrazzld/streamly-api/internal/config"
	"github.com/phrazzld/streamly-api/internal/service"
	"github.com/phrazzld/streamly-api/internal/store/memory"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger

	userHandler    *api.UserHandler
	paymentHandler *api.PaymentHandler
}

// newApplication wires stores, services, and handlers together. Both stores
// are process-local; all data is lost on restart.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	userStore := memory.NewUserStore()
	paymentStore := memory.NewPaymentStore()

	userService := service.NewUserService(userStore, service.NewSHA256Hasher())
	paymentService := service.NewPaymentService(paymentStore, userStore)

	return &application{
		config:         cfg,
		logger:         logger,
		userHandler:    api.NewUserHandler(userService),
		paymentHandler: api.NewPaymentHandler(paymentService),
	}
}
