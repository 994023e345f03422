package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/saurabh/starter-templates/cmd"
	"github.com/saurabh/starter-templates/config"
	"github.com/saurabh/starter-templates/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.RootCommand(cfg).ExecuteContext(ctx); err != nil {
		logger.WithError(err).Error("Command failed")
		stop()
		os.Exit(1)
	}
}
