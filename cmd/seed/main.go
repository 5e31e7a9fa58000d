// Command seed loads the curated starter recipes through the ingestion
// pipeline. Re-running it is safe: existing titles are skipped.
package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/abhinavsrinivasan/diabetes-me/config"
	"github.com/abhinavsrinivasan/diabetes-me/services"
)

func main() {
	cfg := config.Load()
	config.InitDB(cfg)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	store := services.NewRecipeStore(config.DB)
	ingest := services.NewIngestService(store, nil, logger)

	report, err := ingest.IngestBatch(context.Background(), services.SeedRecords(), services.ModeAppend)
	if err != nil {
		logger.Fatal("seeding aborted", zap.Error(err))
	}

	fmt.Printf("seeded %d recipes (%d already present, %d errors)\n",
		report.Ingested, report.SkippedDuplicate, report.SkippedError)
}
