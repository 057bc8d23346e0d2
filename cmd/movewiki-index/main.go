package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"movewiki/internal/chunker"
	"movewiki/internal/config"
	"movewiki/internal/ingest"
	"movewiki/internal/search"
	"movewiki/internal/store"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, dataDir string
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file")
	flag.StringVar(&dataDir, "data", "", "Data directory (overrides config)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if dataDir == "" {
		dataDir = cfg.Data.Dir
	}

	ctx := context.Background()

	log.Printf("loading documents from %s", dataDir)
	raws, err := ingest.LoadDocuments(dataDir)
	if err != nil {
		log.Fatalf("loading documents failed: %v", err)
	}
	log.Printf("loaded %d documents", len(raws))

	ck := chunker.NewWordChunker(cfg.Chunker.ChunkSize, cfg.Chunker.Overlap)
	chunks, err := ingest.Process(raws, ck)
	if err != nil {
		log.Fatalf("processing documents failed: %v", err)
	}
	log.Printf("produced %d chunks", len(chunks))

	st, err := search.NewStore(search.Config{URL: cfg.Elastic.URL, Index: cfg.Elastic.Index})
	if err != nil {
		log.Fatalf("creating search store failed: %v", err)
	}
	if err := st.Ping(ctx); err != nil {
		log.Fatalf("elasticsearch not reachable: %v", err)
	}
	if err := st.Recreate(ctx); err != nil {
		log.Fatalf("recreating index failed: %v", err)
	}
	if err := st.IndexChunks(ctx, chunks); err != nil {
		log.Fatalf("indexing chunks failed: %v", err)
	}
	log.Printf("indexed %d chunks into %s", len(chunks), cfg.Elastic.Index)

	db, err := store.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("opening conversation store failed: %v", err)
	}
	defer db.Close()
	if err := db.Init(ctx); err != nil {
		log.Fatalf("initializing conversation store failed: %v", err)
	}
	log.Printf("conversation store initialized at %s", cfg.Storage.Path)

	if _, err := os.Stat(cfg.Data.GroundTruth); err != nil {
		log.Printf("warning: ground truth fixture not found at %s", cfg.Data.GroundTruth)
	} else {
		log.Printf("ground truth fixture found at %s", cfg.Data.GroundTruth)
	}

	log.Println("indexing completed")
}
