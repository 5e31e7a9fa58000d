// Command import pulls recipes into the destination store, either from the
// upstream catalog API or from a delimited CSV export.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/abhinavsrinivasan/diabetes-me/config"
	"github.com/abhinavsrinivasan/diabetes-me/services"
	"github.com/abhinavsrinivasan/diabetes-me/utils"
)

func main() {
	var (
		source     = flag.String("source", "api", "record source: api or csv")
		csvPath    = flag.String("csv", "", "path to the CSV file (required for -source csv)")
		listFormat = flag.String("list-format", "literal", "CSV list encoding: literal, braces, newline or comma")
		mode       = flag.String("mode", "append", "ingest mode: append or replace-all")
		cuisines   = flag.String("cuisines", "", "comma-separated cuisine list for API import (default: diabetic diet search)")
	)
	flag.Parse()

	ingestMode := services.IngestMode(*mode)
	if ingestMode != services.ModeAppend && ingestMode != services.ModeReplaceAll {
		log.Fatalf("unknown mode %q", *mode)
	}

	cfg := config.Load()
	config.InitDB(cfg)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	store := services.NewRecipeStore(config.DB)
	catalog := services.NewSpoonacularService(cfg.SpoonacularAPIKey)
	ingest := services.NewIngestService(store, catalog, logger)

	ctx := context.Background()

	switch *source {
	case "api":
		importFromAPI(ctx, ingest, cfg, ingestMode, *cuisines, logger)
	case "csv":
		if *csvPath == "" {
			log.Fatal("-csv is required with -source csv")
		}
		importFromCSV(ctx, ingest, *csvPath, utils.ListEncoding(*listFormat), ingestMode, logger)
	default:
		log.Fatalf("unknown source %q", *source)
	}
}

func importFromAPI(ctx context.Context, ingest *services.IngestService, cfg *config.Config, mode services.IngestMode, cuisines string, logger *zap.Logger) {
	filters := buildFilters(cfg, cuisines)

	for i, filter := range filters {
		// The replace wipe must happen once, not per cuisine.
		batchMode := mode
		if i > 0 {
			batchMode = services.ModeAppend
		}

		report, err := ingest.ImportFromSource(ctx, filter, batchMode)
		if err != nil {
			logger.Error("import aborted",
				zap.String("cuisine", filter.Cuisine),
				zap.Int("ingested_before_abort", report.Ingested),
				zap.Error(err),
			)
			os.Exit(1)
		}
		printReport(report)
	}
}

func buildFilters(cfg *config.Config, cuisines string) []services.SearchFilter {
	base := services.SearchFilter{
		MaxCarbs: cfg.ImportMaxCarbs,
		MaxSugar: cfg.ImportMaxSugar,
		Number:   cfg.ImportLimit,
	}

	if cuisines == "" {
		base.Diet = "diabetic"
		return []services.SearchFilter{base}
	}

	var filters []services.SearchFilter
	for _, cuisine := range strings.Split(cuisines, ",") {
		f := base
		f.Cuisine = strings.TrimSpace(cuisine)
		if f.Cuisine != "" {
			filters = append(filters, f)
		}
	}
	return filters
}

func importFromCSV(ctx context.Context, ingest *services.IngestService, path string, enc utils.ListEncoding, mode services.IngestMode, logger *zap.Logger) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("failed to open CSV: %v", err)
	}
	defer f.Close()

	records, err := readRows(f, enc)
	if err != nil {
		log.Fatalf("failed to read CSV: %v", err)
	}

	report, err := ingest.IngestBatch(ctx, records, mode)
	if err != nil {
		logger.Error("import aborted", zap.Error(err))
		os.Exit(1)
	}
	printReport(report)
}

// readRows maps each CSV row onto the header, yielding delimited-source
// records for the pipeline.
func readRows(r io.Reader, enc utils.ListEncoding) ([]services.SourceRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("missing header row: %w", err)
	}

	var records []services.SourceRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		fields := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				fields[strings.TrimSpace(col)] = row[i]
			}
		}
		records = append(records, services.SourceRecord{
			Format:      services.FormatRow,
			Row:         fields,
			RowEncoding: enc,
		})
	}
	return records, nil
}

func printReport(report *services.IngestionReport) {
	fmt.Printf("batch %s: fetched=%d ingested=%d duplicates=%d errors=%d\n",
		report.BatchID, report.Fetched, report.Ingested,
		report.SkippedDuplicate, report.SkippedError)
	for _, msg := range report.Errors {
		fmt.Printf("  skipped: %s\n", msg)
	}
}
