// In-memory variant: todos live in the process and vanish on restart.
package main

import (
	"log"

	"todoapi/internal/app"
	"todoapi/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	application, err := app.NewInMemory(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}
	log.Printf("app ready, starting HTTP server")

	if err := app.Run(application, cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
