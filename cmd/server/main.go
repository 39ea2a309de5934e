package main

import (
	"fmt"
	"log"

	"github.com/todmy/doc-comparer/internal/api"
	"github.com/todmy/doc-comparer/internal/compare"
	"github.com/todmy/doc-comparer/internal/config"
	"github.com/todmy/doc-comparer/internal/extract"
	"github.com/todmy/doc-comparer/internal/logger"
	"github.com/todmy/doc-comparer/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	resultStore := store.NewMemory(cfg.StoreTTL(), cfg.StoreCapacity, lg)
	defer resultStore.Close()

	comparer := compare.NewService(resultStore, lg)

	server := api.NewServer(api.ServerConfig{
		Comparer:       comparer,
		Extractor:      extract.NewPDFExtractor(lg),
		Logger:         lg,
		MaxUploadBytes: cfg.MaxUploadBytes(),
	})

	lg.Info().Int("port", cfg.Port).Msg("starting doc-comparer server")
	if err := server.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		lg.Fatal().Err(err).Msg("server exited")
	}
}
