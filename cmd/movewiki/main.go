package main

import (
	"context"
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"movewiki/internal/config"
	"movewiki/internal/llm"
	"movewiki/internal/search"
	"movewiki/internal/service"
	"movewiki/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	searcher, err := search.NewStore(search.Config{URL: cfg.Elastic.URL, Index: cfg.Elastic.Index})
	if err != nil {
		log.Fatalf("creating search store failed: %v", err)
	}
	if err := searcher.Ping(context.Background()); err != nil {
		log.Fatalf("elasticsearch not reachable: %v", err)
	}

	completer, err := llm.NewClient(llm.Config{
		APIKey:    os.Getenv(cfg.OpenAI.APIKeyEnv),
		MaxTokens: cfg.OpenAI.MaxTokens,
	})
	if err != nil {
		log.Fatalf("creating completion client failed: %v", err)
	}
	evaluator := llm.NewEvaluator(completer, cfg.OpenAI.Model)
	pipeline := service.NewPipeline(searcher, completer, evaluator, cfg.Retriever.TopK)

	m := tui.New(pipeline, cfg.OpenAI.Model)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
