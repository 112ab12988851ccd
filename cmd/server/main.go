package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"tg-casino/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, err := app.NewServer()
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		<-ctx.Done()
		server.Shutdown()
	}()

	if err := server.Start(ctx); err != nil {
		log.Fatal(err)
	}
}
