package main

import (
	"flag"
	"log"

	"LocalSketch/internal/config"
	"LocalSketch/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Starting board (storage key %q)", cfg.StorageKey)
	if err := ui.RunApp(cfg); err != nil {
		log.Fatalf("Failed to start board: %v", err)
	}
}
