package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/abhinavsrinivasan/diabetes-me/models"
)

// IngestMode selects how a batch meets the destination collection.
type IngestMode string

const (
	// ModeAppend inserts records alongside whatever is already stored,
	// skipping title duplicates.
	ModeAppend IngestMode = "append"
	// ModeReplaceAll clears the destination before inserting the batch. It
	// is a deliberate total refresh, never implied.
	ModeReplaceAll IngestMode = "replace-all"
)

// RecipeStore is the destination collection for canonical recipes.
type RecipeStore interface {
	// FindByTitle returns (nil, nil) when no record matches.
	FindByTitle(title string) (*models.Recipe, error)
	Insert(r *models.Recipe) error
	DeleteAll() error
}

// RecipeSource is the upstream catalog: a filtered page fetch plus a
// per-id detail fetch.
type RecipeSource interface {
	SearchRecipes(ctx context.Context, f SearchFilter) ([]APIRecipe, error)
	RecipeInfo(ctx context.Context, id int) (*APIRecipe, error)
}

// IngestionReport summarizes one batch.
type IngestionReport struct {
	BatchID          string   `json:"batch_id"`
	Fetched          int      `json:"fetched"`
	Ingested         int      `json:"ingested"`
	SkippedDuplicate int      `json:"skipped_duplicate"`
	SkippedError     int      `json:"skipped_error"`
	Errors           []string `json:"errors"`
}

type IngestService struct {
	store   RecipeStore
	source  RecipeSource
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewIngestService wires the pipeline to a destination store and an
// optional upstream source. The limiter paces detail fetches as a courtesy
// to the catalog's fair-use limits.
func NewIngestService(store RecipeStore, source RecipeSource, logger *zap.Logger) *IngestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IngestService{
		store:   store,
		source:  source,
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
		log:     logger,
	}
}

// IngestBatch normalizes and stores a batch of raw records. Per-record
// failures are logged and counted without touching sibling records; only
// quota exhaustion or a dead store aborts the batch.
func (s *IngestService) IngestBatch(ctx context.Context, records []SourceRecord, mode IngestMode) (*IngestionReport, error) {
	report := s.newReport()

	if err := s.prepare(mode); err != nil {
		return report, err
	}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Fetched++
		if err := s.processRecord(rec, report); err != nil {
			return report, err
		}
	}

	s.logReport(report)
	return report, nil
}

// ImportFromSource pulls one filtered page from the upstream catalog,
// fetches each record's detail, and runs the normal per-record pipeline.
// A quota signal from either fetch ends the batch immediately; there is no
// retry loop.
func (s *IngestService) ImportFromSource(ctx context.Context, filter SearchFilter, mode IngestMode) (*IngestionReport, error) {
	report := s.newReport()

	if s.source == nil {
		return report, fmt.Errorf("no upstream source configured")
	}
	if err := s.prepare(mode); err != nil {
		return report, err
	}

	page, err := s.source.SearchRecipes(ctx, filter)
	if err != nil {
		return report, err
	}

	for _, summary := range page {
		if err := s.limiter.Wait(ctx); err != nil {
			return report, err
		}

		info, err := s.source.RecipeInfo(ctx, summary.ID)
		if err != nil {
			if errors.Is(err, ErrQuotaExceeded) {
				return report, err
			}
			report.Fetched++
			report.SkippedError++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", summary.Title, err))
			s.log.Warn("detail fetch failed",
				zap.String("title", summary.Title), zap.Error(err))
			continue
		}

		report.Fetched++
		if err := s.processRecord(SourceRecord{Format: FormatAPI, API: info}, report); err != nil {
			return report, err
		}
	}

	s.logReport(report)
	return report, nil
}

func (s *IngestService) newReport() *IngestionReport {
	return &IngestionReport{BatchID: uuid.NewString()}
}

func (s *IngestService) prepare(mode IngestMode) error {
	if mode != ModeReplaceAll {
		return nil
	}
	s.log.Warn("clearing destination collection before import")
	if err := s.store.DeleteAll(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// processRecord runs one record through extract → estimate → classify →
// dedup → insert and books the outcome. A non-nil return is batch-fatal.
func (s *IngestService) processRecord(rec SourceRecord, report *IngestionReport) error {
	err := s.ingestOne(rec)
	switch {
	case err == nil:
		report.Ingested++
	case errors.Is(err, ErrDuplicateTitle):
		// First-seen record wins; a duplicate is a skip, not a failure.
		report.SkippedDuplicate++
		s.log.Info("skipping duplicate recipe", zap.String("title", recordTitle(rec)))
	case errors.Is(err, ErrQuotaExceeded) || errors.Is(err, ErrStoreUnavailable):
		return err
	default:
		report.SkippedError++
		report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", recordTitle(rec), err))
		s.log.Warn("skipping recipe",
			zap.String("title", recordTitle(rec)), zap.Error(err))
	}
	return nil
}

func (s *IngestService) ingestOne(rec SourceRecord) error {
	draft, err := ExtractRecord(rec)
	if err != nil {
		return err
	}
	recipe := draft.Canonical()

	existing, err := s.store.FindByTitle(recipe.Title)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateTitle, recipe.Title)
	}

	if err := s.store.Insert(&recipe); err != nil {
		return err
	}

	s.log.Info("ingested recipe",
		zap.String("title", recipe.Title),
		zap.Int("carbs", recipe.Carbs),
		zap.Int("sugar", recipe.Sugar),
		zap.Int("glycemic_index", recipe.GlycemicIndex),
	)
	return nil
}

func (s *IngestService) logReport(report *IngestionReport) {
	s.log.Info("batch complete",
		zap.String("batch_id", report.BatchID),
		zap.Int("fetched", report.Fetched),
		zap.Int("ingested", report.Ingested),
		zap.Int("skipped_duplicate", report.SkippedDuplicate),
		zap.Int("skipped_error", report.SkippedError),
	)
}

// recordTitle yields a best-effort title for error messages.
func recordTitle(rec SourceRecord) string {
	switch rec.Format {
	case FormatAPI:
		if rec.API != nil && rec.API.Title != "" {
			return rec.API.Title
		}
	case FormatRow:
		if t := rec.Row["title"]; t != "" {
			return t
		}
	case FormatSeed:
		if rec.Seed != nil && rec.Seed.Title != "" {
			return rec.Seed.Title
		}
	}
	return "(unknown)"
}
