// Command vectorize scrubs the catalog's aircraft pages, embeds each chunk
// through the OpenAI embeddings endpoint, appends the records to a JSONL
// file, and regenerates the pretty review rendering from the full file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/AeroDexAI/aerodex-mvp/engine/catalog"
	"github.com/AeroDexAI/aerodex-mvp/engine/ingest"
	"github.com/AeroDexAI/aerodex-mvp/engine/sink"
	"github.com/AeroDexAI/aerodex-mvp/pkg/embedding"
	"github.com/AeroDexAI/aerodex-mvp/pkg/metrics"
	"github.com/google/uuid"
)

var met = metrics.New()

var (
	mEntities   = met.Counter("aerodex_vectorize_entities_total", "Entities processed")
	mRecords    = met.Counter("aerodex_vectorize_records_total", "Records appended")
	mEmbedCalls = met.Counter("aerodex_vectorize_embed_calls_total", "Embed invocations")
	mEmbedDur   = met.Histogram("aerodex_vectorize_embed_duration_seconds", "Per-chunk embed time", nil)
)

// meteredEmbedder counts and times embed invocations around the real client.
type meteredEmbedder struct {
	inner ingest.Embedder
}

func (m meteredEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	start := time.Now()
	vals, err := m.inner.Embed(ctx, text)
	mEmbedCalls.Inc()
	mEmbedDur.Since(start)
	return vals, err
}

func (m meteredEmbedder) Dimensions() int { return m.inner.Dimensions() }

func main() {
	var (
		outPath     = flag.String("out", "aerodex_vectors.jsonl", "JSONL output path")
		prettyPath  = flag.String("pretty", "aerodex_vectors_pretty.json", "pretty JSON output path")
		entity      = flag.String("entity", "all", "entity name to process, or 'all'")
		fresh       = flag.Bool("fresh", false, "remove the JSONL file before the run")
		model       = flag.String("model", embedding.DefaultModel, "embedding model")
		dims        = flag.Int("dims", embedding.DefaultDimensions, "embedding dimensionality")
		rps         = flag.Float64("rps", 0, "max embedding requests per second (0 = unpaced)")
		baseURL     = flag.String("openai-url", "", "override for the OpenAI API base URL")
		metricsAddr = flag.String("metrics", "", "listen address for /metrics (empty = disabled)")
	)
	flag.Parse()

	log := slog.Default().With("run_id", uuid.NewString())

	if *metricsAddr != "" {
		met.ServeAsync(*metricsAddr)
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Error("OPENAI_API_KEY is not set")
		os.Exit(1)
	}

	specs, err := selectEntities(*entity)
	if err != nil {
		log.Error("entity selection failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := embedding.NewClient(embedding.Config{
		APIKey:            apiKey,
		BaseURL:           *baseURL,
		Model:             *model,
		Dimensions:        *dims,
		RequestsPerSecond: *rps,
		Logger:            log,
	})

	if err := run(ctx, log, client, specs, *outPath, *prettyPath, *fresh); err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func selectEntities(name string) ([]catalog.EntitySpec, error) {
	if strings.EqualFold(name, "all") {
		return catalog.Entities(), nil
	}
	spec, ok := catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown entity %q, known: %s", name, strings.Join(catalog.Names(), ", "))
	}
	return []catalog.EntitySpec{spec}, nil
}

func run(ctx context.Context, log *slog.Logger, emb ingest.Embedder, specs []catalog.EntitySpec, outPath, prettyPath string, fresh bool) error {
	if fresh {
		switch err := os.Remove(outPath); {
		case err == nil:
			log.Info("removed existing output for a fresh run", "path", outPath)
		case !errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("remove %s: %w", outPath, err)
		}
	}

	deps := ingest.Deps{
		Embedder: meteredEmbedder{inner: emb},
		Sink:     sink.NewFileSink(outPath, log),
		Logger:   log,
	}

	total := 0
	for _, spec := range specs {
		n, err := ingest.Run(ctx, deps, spec)
		if err != nil {
			return fmt.Errorf("%s: %w", spec.Name, err)
		}
		mEntities.Inc()
		mRecords.Add(int64(n))
		log.Info("entity processed", "entity", spec.Name, "records", n)
		total += n
	}

	if _, err := sink.RenderPretty(outPath, prettyPath, true, log); err != nil {
		return err
	}

	log.Info("run complete", "entities", len(specs), "records", total)
	return nil
}
