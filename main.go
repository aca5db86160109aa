package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aircond/internal/app"
	"aircond/internal/logger"
)

func main() {
	a := app.NewApp()
	if err := a.Initialize(); err != nil {
		logger.Error("Init error: %v", err)
		os.Exit(1)
	}

	if err := a.Start(); err != nil {
		logger.Error("Start error: %v", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.Stop(ctx); err != nil {
		logger.Error("Stop error: %v", err)
	}
}
