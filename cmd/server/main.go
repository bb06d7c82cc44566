// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"github.com/khuyentran1401/diffbot-analytics/internal/analyzer"
	"github.com/khuyentran1401/diffbot-analytics/internal/config"
	"github.com/khuyentran1401/diffbot-analytics/internal/history"
	"github.com/khuyentran1401/diffbot-analytics/internal/llm"
	"github.com/khuyentran1401/diffbot-analytics/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	diffbot, err := llm.NewDiffbot(&cfg.Diffbot)
	if err != nil {
		log.Fatalf("failed to create Diffbot client: %v", err)
	}

	analyzer := analyzer.New(diffbot, history.NewStore())

	srv := server.New(*cfg, analyzer)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
