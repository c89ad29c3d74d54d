package http

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"dashmonkey/config"
	"dashmonkey/internal/delivery/http/middleware"
	"dashmonkey/internal/delivery/http/router"
	"dashmonkey/internal/delivery/http/router/handler"
	mockService "dashmonkey/internal/mocks/service"
	mockUsecase "dashmonkey/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewServer_AppliesConfiguredTimeouts(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	cfg.HTTP.Timeouts.ReadTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = time.Minute

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	d, err := NewServer(HTTPParams{
		Lifecycle:       fxtest.NewLifecycle(t),
		Config:          cfg,
		Logger:          logger,
		ErrorMiddleware: middleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(mockUsecase.NewMockAuthUsecase(t), logger),
			SessionHandler: handler.NewSessionHandler(mockUsecase.NewMockSessionUsecase(t), logger),
			ProfileHandler: handler.NewProfileHandler(mockUsecase.NewMockProfileUsecase(t), logger),
			AuthMiddleware: middleware.NewAuthMiddleware(mockService.NewMockTokenService(t)),
		},
	})
	require.NoError(t, err)

	srv, ok := d.(*httpServer)
	require.True(t, ok)

	assert.Equal(t, 10*time.Second, srv.server.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, srv.server.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, srv.server.Server.WriteTimeout)
	assert.Equal(t, time.Minute, srv.server.Server.IdleTimeout)
}
