package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/redmane/redmane/pkg/auth"
	"github.com/redmane/redmane/pkg/config"
	"github.com/redmane/redmane/pkg/service"
)

// Launch serves the API until ctx is cancelled, then shuts down gracefully.
func Launch(ctx context.Context, cfg *config.Config) error {
	redmaneService, err := service.NewRedmaneService(logrus.StandardLogger(), cfg)
	if err != nil {
		return err
	}

	defer func() {
		if err := redmaneService.Store.Close(); err != nil {
			logrus.Errorf("Failed to close store: %v", err)
		}
	}()

	app := NewApp(cfg, redmaneService, auth.NewKeycloakAuthenticator(cfg.Keycloak))

	go func() {
		<-ctx.Done()

		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			logrus.Errorf("Failed to gracefully shutdown redmane server: %v", err)
		}
	}()

	logrus.Infof("Listening on %s", cfg.Address)

	if err := app.Listen(cfg.Address); err != nil {
		return fmt.Errorf("failed to start redmane server: %w", err)
	}

	return nil
}
