package main

import (
	"context"
	"log"

	"hananav-be/internal/bootstrap"
	"hananav-be/internal/config"
	"hananav-be/internal/server"
	"hananav-be/internal/tracer"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	container := bootstrap.NewContainer(cfg)

	// Usage consumer drains the in-process event bus for the admin histogram.
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
