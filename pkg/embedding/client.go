// Package embedding wraps the OpenAI embeddings endpoint behind the
// Embedder contract the ingestion pipeline consumes.
package embedding

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

// DefaultModel is the embedding model used when none is configured.
const DefaultModel = string(openai.SmallEmbedding3)

// DefaultDimensions is the vector dimensionality requested by default.
const DefaultDimensions = 1536

// Config configures a Client. The zero value of optional fields picks the
// defaults above; APIKey is the only required field.
type Config struct {
	APIKey            string
	BaseURL           string // override for tests / proxies
	Model             string
	Dimensions        int
	RequestsPerSecond float64 // <= 0 disables pacing
	Logger            *slog.Logger
}

// Client issues one synchronous embedding call per Embed invocation. It holds
// no cache and performs no batching or retries; a failed call is logged with
// a preview of the offending text and returned to the caller.
type Client struct {
	api     *openai.Client
	model   openai.EmbeddingModel
	dims    int
	limiter *rate.Limiter
	log     *slog.Logger
}

// NewClient builds a Client scoped to one run: construct, use, discard.
func NewClient(cfg Config) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	oc.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	dims := cfg.Dimensions
	if dims <= 0 {
		dims = DefaultDimensions
	}
	rps := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		rps = rate.Limit(cfg.RequestsPerSecond)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		api:     openai.NewClientWithConfig(oc),
		model:   openai.EmbeddingModel(model),
		dims:    dims,
		limiter: rate.NewLimiter(rps, 1),
		log:     log,
	}
}

// Dimensions returns the configured vector dimensionality.
func (c *Client) Dimensions() int { return c.dims }

// Embed returns one vector for text. Empty or all-whitespace input returns an
// empty (non-nil) vector without touching the network.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		c.log.Warn("embedding: skipping empty or whitespace-only text")
		return []float32{}, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}

	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input:      []string{text},
		Model:      c.model,
		Dimensions: c.dims,
	})
	if err != nil {
		c.log.Error("embedding: request failed", "text_preview", preview(text, 50), "error", err)
		return nil, fmt.Errorf("embedding %q: %w", preview(text, 50), err)
	}
	if len(resp.Data) != 1 {
		return nil, fmt.Errorf("embedding: got %d results for one input", len(resp.Data))
	}
	return resp.Data[0].Embedding, nil
}

func preview(text string, n int) string {
	if len(text) <= n {
		return text
	}
	return text[:n] + "..."
}
