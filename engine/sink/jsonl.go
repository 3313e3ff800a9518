// Package sink persists vector records: an append-only JSON Lines file plus a
// pretty-printed review rendering with the vectors redacted.
package sink

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/AeroDexAI/aerodex-mvp/engine/domain"
)

// RedactedPlaceholder replaces the values array in review output.
const RedactedPlaceholder = "[EMBEDDING_VECTOR_REMOVED_FOR_READABILITY]"

var redactedValues = json.RawMessage(`"` + RedactedPlaceholder + `"`)

// FileSink appends records to one JSONL file, creating it on first write.
// The file is assumed single-writer.
type FileSink struct {
	path string
	log  *slog.Logger
}

// NewFileSink creates a sink writing to path.
func NewFileSink(path string, log *slog.Logger) *FileSink {
	if log == nil {
		log = slog.Default()
	}
	return &FileSink{path: path, log: log}
}

// Path returns the sink's target path.
func (s *FileSink) Path() string { return s.path }

// Append writes one JSON object per record and reports the count written.
func (s *FileSink) Append(records []domain.VectorRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("sink: open %s: %w", s.path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	n := 0
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return n, fmt.Errorf("sink: encode %s: %w", rec.ID, err)
		}
		w.Write(line)
		w.WriteByte('\n')
		n++
	}
	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("sink: write %s: %w", s.path, err)
	}
	s.log.Info("sink: appended records", "count", n, "path", s.path)
	return n, nil
}

// prettyRecord mirrors the wire record; values and metadata stay raw so the
// review output reproduces whatever the JSONL line carried.
type prettyRecord struct {
	ID          string          `json:"id"`
	Values      json.RawMessage `json:"values"`
	Metadata    json.RawMessage `json:"metadata"`
	TextContent string          `json:"text_content"`
}

// RenderPretty reads every line of inputPath as one record and writes the
// collection as a 2-space-indented JSON array to outputPath, overwriting it.
// With redact set, each record's values become the RedactedPlaceholder
// string. The first malformed line stops decoding: records decoded before it
// are still written, and the returned error names the line and its content.
func RenderPretty(inputPath, outputPath string, redact bool, log *slog.Logger) (int, error) {
	if log == nil {
		log = slog.Default()
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, fmt.Errorf("sink: read %s: %w", inputPath, err)
	}

	entries := []prettyRecord{}
	var decodeErr error
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024) // lines carry full vectors
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var rec prettyRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			decodeErr = fmt.Errorf("sink: decode %s line %d (%q): %w", inputPath, lineNo, line, err)
			log.Error("sink: malformed JSONL line", "path", inputPath, "line", lineNo, "content", line, "error", err)
			break
		}
		if redact {
			rec.Values = redactedValues
		}
		entries = append(entries, rec)
	}
	if decodeErr == nil {
		if err := sc.Err(); err != nil {
			decodeErr = fmt.Errorf("sink: scan %s: %w", inputPath, err)
		}
	}

	// Entries decoded before a failure are still rendered.
	f, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("sink: create %s: %w", outputPath, err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		f.Close()
		return 0, fmt.Errorf("sink: render %s: %w", outputPath, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("sink: close %s: %w", outputPath, err)
	}

	log.Info("sink: rendered pretty output", "count", len(entries), "path", outputPath)
	return len(entries), decodeErr
}
