package ingest

import (
	"context"

	"github.com/AeroDexAI/aerodex-mvp/engine/catalog"
	"github.com/AeroDexAI/aerodex-mvp/engine/domain"
)

// CleanedEntity pairs an entity descriptor with its scrubbed page text.
type CleanedEntity struct {
	Spec    catalog.EntitySpec
	Cleaned string
}

// Embedder is the single-call embedding contract the pipeline depends on:
// one synchronous call, one vector, empty input short-circuited by the
// implementation.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
}

// RecordSink receives finished records for persistence.
type RecordSink interface {
	Append(records []domain.VectorRecord) (int, error)
}
