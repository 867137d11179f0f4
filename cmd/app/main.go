package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/BelugaDiver/foreman/config"
	"github.com/BelugaDiver/foreman/internal/app"
)

func main() {
	// Config
	if _, err := os.Stat(".env"); err == nil {
		err = godotenv.Load()
		if err != nil {
			log.Fatalf("config error: %s", err)
		}
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("config error: %s", err)
	}

	// Run
	app.Run(cfg)
}
