// Single-user variant: persisted todos, no accounts, no tokens.
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
	log.Printf("config loaded, connecting to DB...")

	application, err := app.NewSingleUser(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}
	log.Printf("app ready, starting HTTP server")

	if err := app.Run(application, cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
