package services

import "errors"

// Ingestion error kinds. Per-record conditions are caught at the pipeline
// boundary and aggregated into the IngestionReport; quota exhaustion and an
// unreachable store abort the remaining batch and propagate to the caller.
var (
	ErrQuotaExceeded    = errors.New("upstream quota or rate limit exceeded")
	ErrMissingNutrient  = errors.New("required nutrient missing")
	ErrSourceFormat     = errors.New("unparseable source record")
	ErrDuplicateTitle   = errors.New("recipe title already stored")
	ErrStoreUnavailable = errors.New("destination store unavailable")
)
