// Package catalog holds the per-aircraft entity descriptors the pipeline is
// parameterized by: chunk ids, texts, metadata literals, and the anchored
// extraction rules (with fallbacks) used where a value comes from page text.
package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/AeroDexAI/aerodex-mvp/engine/scrub"
)

// EntitySpec describes one vehicle page and how it splits into chunks.
type EntitySpec struct {
	Name       string
	EntityType string
	Category   string
	SourceText string       // inline page text
	SourceFile string       // optional: read page text from disk instead
	ExtraRules []scrub.Rule // source-specific scrub rules
	Chunks     []ChunkSpec
}

// ChunkSpec describes one record-to-be. Text is the literal chunk text unless
// TextFrom is set; Metadata is the static part, MetaFrom merges extracted
// fields over it. The builder injects entity_type, item_name, and info_type.
type ChunkSpec struct {
	Suffix   string
	InfoType string
	Text     string
	TextFrom *Extract
	Metadata map[string]any
	MetaFrom *MetaExtract
}

// Extract is an anchored pattern search with a predetermined fallback value.
// The first capture group is the extracted value.
type Extract struct {
	Pattern  *regexp.Regexp
	Fallback string
}

// Extraction is the tagged outcome of an Extract. Defaulted marks that the
// pattern missed and Value carries the fallback instead of page content.
type Extraction struct {
	Value     string
	Defaulted bool
}

// Run resolves the extraction against the cleaned page text.
func (e *Extract) Run(cleaned string) Extraction {
	if m := e.Pattern.FindStringSubmatch(cleaned); m != nil {
		return Extraction{Value: strings.TrimSpace(m[1])}
	}
	return Extraction{Value: e.Fallback, Defaulted: true}
}

// MetaExtract maps the capture groups of one pattern onto metadata fields.
type MetaExtract struct {
	Pattern *regexp.Regexp
	Fields  []MetaField // one per capture group, in group order
}

// MetaField describes how one capture group lands in chunk metadata.
// Consecutive List fields sharing a Key collect into a single []any value.
type MetaField struct {
	Key      string
	Fallback string
	Int      bool // strip thousands separators and parse; unparsable -> nil
	List     bool
}

// Run resolves every field against the cleaned page text. A whole-pattern
// miss is an explicit outcome: defaulted is true and every field takes its
// fallback, so callers can surface the degradation instead of hiding it.
func (m *MetaExtract) Run(cleaned string) (fields map[string]any, defaulted bool) {
	groups := m.Pattern.FindStringSubmatch(cleaned)
	defaulted = groups == nil
	fields = make(map[string]any, len(m.Fields))
	for i, f := range m.Fields {
		raw := f.Fallback
		if !defaulted && i+1 < len(groups) {
			raw = strings.TrimSpace(groups[i+1])
		}
		var v any = raw
		if f.Int {
			v = parseIntOrNil(raw)
		}
		if f.List {
			cur, _ := fields[f.Key].([]any)
			fields[f.Key] = append(cur, v)
		} else {
			fields[f.Key] = v
		}
	}
	return fields, defaulted
}

func parseIntOrNil(s string) any {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return nil
	}
	return n
}
