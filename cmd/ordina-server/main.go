package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"ordina/internal/adapters/httpapi"
	"ordina/internal/config"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath(), "path to the config file")
	addrFlag := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("ordina-server: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	srv := httpapi.New(cfg, logger)
	if err := srv.Run(*addrFlag); err != nil {
		log.Fatalf("ordina-server: %v", err)
	}
}
