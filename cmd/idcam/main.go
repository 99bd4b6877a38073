package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/ayusman/idcam/internal/app"
	"github.com/ayusman/idcam/internal/config"
	"github.com/ayusman/idcam/internal/logging"
)

func init() {
	// HighGUI windows must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	logger := logging.New(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(config.Default(), logger)
	if err != nil {
		logger.WithField(logging.ComponentKey, "init").Errorf("CRITICAL: %v", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		logger.WithField(logging.ComponentKey, "system").Errorf("Stream failed: %v", err)
		stop()
		os.Exit(1)
	}
}
