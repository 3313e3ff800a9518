package ingest

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/AeroDexAI/aerodex-mvp/engine/catalog"
	"github.com/AeroDexAI/aerodex-mvp/engine/domain"
)

// fakeEmbedder returns a deterministic vector sized to its dimensionality,
// mirroring the real client's empty-text contract.
type fakeEmbedder struct {
	dims  int
	calls int
	err   error
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if strings.TrimSpace(text) == "" {
		return []float32{}, nil
	}
	vals := make([]float32, f.dims)
	for i := range vals {
		vals[i] = float32(len(text) % 7)
	}
	return vals, nil
}

func (f *fakeEmbedder) Dimensions() int { return f.dims }

type memorySink struct {
	records []domain.VectorRecord
	err     error
}

func (m *memorySink) Append(records []domain.VectorRecord) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.records = append(m.records, records...)
	return len(records), nil
}

func testDeps(emb Embedder, sink RecordSink) Deps {
	return Deps{Embedder: emb, Sink: sink, Logger: slog.Default()}
}

func TestRunP51EndToEnd(t *testing.T) {
	emb := &fakeEmbedder{dims: 3}
	sink := &memorySink{}
	spec, ok := catalog.Lookup("P-51 Mustang")
	if !ok {
		t.Fatal("catalog lost the P-51")
	}

	n, err := Run(context.Background(), testDeps(emb, sink), spec)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 8 || len(sink.records) != 8 {
		t.Fatalf("got %d records appended, %d in sink, want 8", n, len(sink.records))
	}
	if emb.calls != 8 {
		t.Errorf("embedder called %d times, want 8", emb.calls)
	}

	infoTypes := map[string]int{}
	for _, rec := range sink.records {
		if !strings.HasPrefix(rec.ID, "p-51_mustang_") {
			t.Errorf("unexpected record id %q", rec.ID)
		}
		if rec.Metadata["item_name"] != "P-51 Mustang" {
			t.Errorf("%s: item_name = %v", rec.ID, rec.Metadata["item_name"])
		}
		if rec.Metadata["entity_type"] != "aircraft" {
			t.Errorf("%s: entity_type = %v", rec.ID, rec.Metadata["entity_type"])
		}
		it, _ := rec.Metadata["info_type"].(string)
		infoTypes[it]++
	}
	want := map[string]int{
		domain.InfoGeneral:         1,
		domain.InfoOverviewFull:    1,
		domain.InfoOverviewSummary: 1,
		domain.InfoArmament:        2,
		domain.InfoStats:           2,
		domain.InfoCategory:        1,
	}
	for it, count := range want {
		if infoTypes[it] != count {
			t.Errorf("info_type %s: %d records, want %d", it, infoTypes[it], count)
		}
	}
}

func TestRunAllEntities(t *testing.T) {
	emb := &fakeEmbedder{dims: 4}
	sink := &memorySink{}
	total := 0
	for _, spec := range catalog.Entities() {
		n, err := Run(context.Background(), testDeps(emb, sink), spec)
		if err != nil {
			t.Fatalf("%s: %v", spec.Name, err)
		}
		total += n
	}
	if total != 27 || len(sink.records) != 27 {
		t.Fatalf("got %d records, want 27", total)
	}
	for _, rec := range sink.records {
		if err := domain.ValidateRecord(rec, emb.Dimensions()); err != nil {
			t.Errorf("invalid record %s: %v", rec.ID, err)
		}
	}
}

func TestRunMissingSourceFile(t *testing.T) {
	emb := &fakeEmbedder{dims: 3}
	sink := &memorySink{}
	spec := catalog.EntitySpec{
		Name:       "Ghost Plane",
		EntityType: "aircraft",
		SourceFile: "testdata/does-not-exist.txt",
		Chunks:     []catalog.ChunkSpec{{Suffix: "general_info", InfoType: domain.InfoGeneral, Text: "x"}},
	}

	_, err := Run(context.Background(), testDeps(emb, sink), spec)
	if err == nil {
		t.Fatal("expected error for missing source file")
	}
	if !strings.Contains(err.Error(), "does-not-exist.txt") {
		t.Errorf("error should name the file: %v", err)
	}
	if emb.calls != 0 {
		t.Error("nothing should be embedded when cleaning fails")
	}
	if len(sink.records) != 0 {
		t.Error("nothing should be appended when cleaning fails")
	}
}

func TestRunEmbedErrorAbortsEntity(t *testing.T) {
	wantErr := errors.New("quota exceeded")
	emb := &fakeEmbedder{dims: 3, err: wantErr}
	sink := &memorySink{}
	spec, _ := catalog.Lookup("Spitfire")

	_, err := Run(context.Background(), testDeps(emb, sink), spec)
	if !errors.Is(err, wantErr) {
		t.Fatalf("error should wrap the embed failure, got %v", err)
	}
	if emb.calls != 1 {
		t.Errorf("embedding should stop at the first failure, got %d calls", emb.calls)
	}
	if len(sink.records) != 0 {
		t.Error("failed entity must not reach the sink")
	}
}

func TestRunSinkErrorPropagates(t *testing.T) {
	wantErr := errors.New("disk full")
	emb := &fakeEmbedder{dims: 3}
	sink := &memorySink{err: wantErr}
	spec, _ := catalog.Lookup("P-51 Mustang")

	_, err := Run(context.Background(), testDeps(emb, sink), spec)
	if !errors.Is(err, wantErr) {
		t.Fatalf("error should wrap the sink failure, got %v", err)
	}
}

func TestEmptyChunkTextGetsEmptyVector(t *testing.T) {
	emb := &fakeEmbedder{dims: 3}
	sink := &memorySink{}
	spec := catalog.EntitySpec{
		Name:       "Blank Page",
		EntityType: "aircraft",
		SourceText: "irrelevant",
		Chunks: []catalog.ChunkSpec{{
			Suffix:   "general_info",
			InfoType: domain.InfoGeneral,
			Text:     "   ",
		}},
	}

	n, err := Run(context.Background(), testDeps(emb, sink), spec)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 1 {
		t.Fatalf("got %d records", n)
	}
	if len(sink.records[0].Values) != 0 {
		t.Errorf("blank text should carry an empty vector, got %d values", len(sink.records[0].Values))
	}
}
