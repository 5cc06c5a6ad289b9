package main

import (
	"context"
	"log"

	"github.com/avolkov/dogshelter/internal/server/config"
	"github.com/avolkov/dogshelter/internal/worker"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := worker.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
