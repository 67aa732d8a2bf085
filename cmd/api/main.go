// @title           Todo API
// @version         1.0
// @description     Multi-user todo API with registration, login and bearer tokens.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"

	"todoapi/internal/app"
	"todoapi/internal/config"

	_ "todoapi/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("config loaded, connecting to DB...")

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}
	log.Printf("app ready, starting HTTP server")

	if err := app.Run(application, cfg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
