package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"taskboard/internal/app"
	"taskboard/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg)
	if err := application.Init(); err != nil {
		log.Fatalf("initializing app: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		log.Fatalf("running app: %v", err)
	}
}
