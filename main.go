package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/b0bbywan/go-mpris-cli/cli"
	"github.com/b0bbywan/go-mpris-cli/config"
	"github.com/b0bbywan/go-mpris-cli/logger"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		logger.Fatal("[%s] Failed to load config: %v", config.AppName, err)
	}

	// Set log level from config; the --log-level flag may override it later
	logger.SetLevel(cfg.LogLevel)
	if cfg.LogJournal {
		logger.EnableJournal()
	}

	// One command per invocation; Ctrl-C cancels the in-flight bus call
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(cli.Execute(ctx, cfg))
}
