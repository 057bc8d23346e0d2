package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"movewiki/internal/config"
	"movewiki/internal/groundtruth"
	"movewiki/internal/llm"
	"movewiki/internal/search"
	"movewiki/internal/server"
	"movewiki/internal/service"
	"movewiki/internal/store"
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
		log.Printf("warning: elasticsearch not reachable: %v", err)
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

	db, err := store.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("opening conversation store failed: %v", err)
	}
	defer db.Close()

	faq, err := groundtruth.Load(cfg.Data.GroundTruth)
	if err != nil {
		log.Printf("warning: ground truth fixture not loaded: %v", err)
	}

	srv := server.New(pipeline, db, faq, cfg.Server.AllowedOrigins)
	log.Printf("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
