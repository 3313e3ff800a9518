// Package ingest composes the vectorization pipeline: scrub the entity's page
// text, resolve its chunk specs, embed each chunk, and hand the records to
// the sink. Chunks are embedded strictly one at a time, in source order.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AeroDexAI/aerodex-mvp/engine/catalog"
	"github.com/AeroDexAI/aerodex-mvp/engine/domain"
	"github.com/AeroDexAI/aerodex-mvp/engine/scrub"
	"github.com/AeroDexAI/aerodex-mvp/pkg/fn"
)

// Deps holds the external dependencies for one vectorization run. Construct,
// use for the run, discard.
type Deps struct {
	Embedder Embedder
	Sink     RecordSink
	Logger   *slog.Logger
}

// NewClean returns the stage that scrubs an entity's source text. Inline text
// is used unless the descriptor points at a file; a missing file aborts the
// entity's run before anything is written.
func NewClean() fn.Stage[catalog.EntitySpec, CleanedEntity] {
	return func(_ context.Context, spec catalog.EntitySpec) fn.Result[CleanedEntity] {
		scrubber := scrub.New(spec.ExtraRules...)
		if spec.SourceFile != "" {
			cleaned, err := scrubber.ScrubFile(spec.SourceFile)
			if err != nil {
				return fn.Err[CleanedEntity](err)
			}
			return fn.Ok(CleanedEntity{Spec: spec, Cleaned: cleaned})
		}
		return fn.Ok(CleanedEntity{Spec: spec, Cleaned: scrubber.Scrub(spec.SourceText)})
	}
}

// NewBuild returns the stage that resolves chunk specs against the cleaned
// text and embeds them. Extraction misses fall back to the descriptor's
// defaults and are logged, not raised; embed failures abort the entity.
func NewBuild(emb Embedder, log *slog.Logger) fn.Stage[CleanedEntity, []domain.VectorRecord] {
	return func(ctx context.Context, ce CleanedEntity) fn.Result[[]domain.VectorRecord] {
		records := make([]domain.VectorRecord, 0, len(ce.Spec.Chunks))
		for _, chunk := range ce.Spec.Chunks {
			rec, err := buildRecord(ctx, ce, chunk, emb, log)
			if err != nil {
				return fn.Err[[]domain.VectorRecord](err)
			}
			records = append(records, rec)
		}
		return fn.Ok(records)
	}
}

func buildRecord(ctx context.Context, ce CleanedEntity, chunk catalog.ChunkSpec, emb Embedder, log *slog.Logger) (domain.VectorRecord, error) {
	id := domain.RecordID(ce.Spec.Name, chunk.Suffix)

	text := chunk.Text
	if chunk.TextFrom != nil {
		ex := chunk.TextFrom.Run(ce.Cleaned)
		if ex.Defaulted {
			log.Warn("ingest: text extraction missed, using fallback", "id", id)
		}
		text = ex.Value
	}

	meta := make(map[string]any, len(chunk.Metadata)+3)
	for k, v := range chunk.Metadata {
		meta[k] = v
	}
	if chunk.MetaFrom != nil {
		fields, defaulted := chunk.MetaFrom.Run(ce.Cleaned)
		if defaulted {
			log.Warn("ingest: metadata extraction missed, using fallbacks", "id", id, "fields", len(fields))
		}
		for k, v := range fields {
			meta[k] = v
		}
	}
	meta["entity_type"] = ce.Spec.EntityType
	meta["item_name"] = ce.Spec.Name
	meta["info_type"] = chunk.InfoType

	values, err := emb.Embed(ctx, text)
	if err != nil {
		return domain.VectorRecord{}, fmt.Errorf("ingest: embed %s: %w", id, err)
	}

	rec := domain.VectorRecord{
		ID:          id,
		Values:      values,
		Metadata:    meta,
		TextContent: text,
	}
	if err := domain.ValidateRecord(rec, emb.Dimensions()); err != nil {
		return domain.VectorRecord{}, fmt.Errorf("ingest: %w", err)
	}
	return rec, nil
}

// NewPersist returns the stage that appends records to the sink and reports
// the count written.
func NewPersist(sink RecordSink) fn.Stage[[]domain.VectorRecord, int] {
	return func(_ context.Context, records []domain.VectorRecord) fn.Result[int] {
		return fn.FromPair(sink.Append(records))
	}
}

// LoggedTap returns a passthrough stage that logs entry and exit with the
// elapsed duration.
func LoggedTap[T any](name string, log *slog.Logger) fn.Stage[T, T] {
	return func(_ context.Context, t T) fn.Result[T] {
		log.Info("stage.enter", "stage", name)
		start := time.Now()
		defer func() {
			log.Info("stage.exit", "stage", name, "duration", time.Since(start))
		}()
		return fn.Ok(t)
	}
}

// NewPipeline wires Clean -> Build -> Persist with tracing and log taps.
func NewPipeline(deps Deps) fn.Stage[catalog.EntitySpec, int] {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	cleaned := fn.Then(LoggedTap[catalog.EntitySpec]("clean", log), fn.TracedStage("clean", NewClean()))
	built := fn.Then(cleaned, fn.Then(LoggedTap[CleanedEntity]("build", log), fn.TracedStage("build", NewBuild(deps.Embedder, log))))
	persisted := fn.Then(built, fn.Then(LoggedTap[[]domain.VectorRecord]("persist", log), fn.TracedStage("persist", NewPersist(deps.Sink))))
	return persisted
}

// Run processes one entity end to end and returns the number of records
// appended.
func Run(ctx context.Context, deps Deps, spec catalog.EntitySpec) (int, error) {
	return NewPipeline(deps)(ctx, spec).Unwrap()
}
