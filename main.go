package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/redmane/redmane/pkg/config"
	"github.com/redmane/redmane/pkg/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level %q: %v", cfg.LogLevel, err)
	}

	logrus.SetLevel(logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Launch(ctx, cfg); err != nil {
		logrus.Errorf("Server stopped: %v", err)
		stop()
		os.Exit(1)
	}
}
