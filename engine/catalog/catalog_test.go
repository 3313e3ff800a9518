package catalog

import (
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/AeroDexAI/aerodex-mvp/engine/domain"
	"github.com/AeroDexAI/aerodex-mvp/engine/scrub"
)

func TestExtractHit(t *testing.T) {
	e := &Extract{
		Pattern:  regexp.MustCompile(`Price\s*\$([0-9,]+)`),
		Fallback: "0",
	}
	got := e.Run("General Information\nPrice\n$850,000\n")
	if got.Defaulted {
		t.Fatal("pattern should have matched")
	}
	if got.Value != "850,000" {
		t.Errorf("value = %q", got.Value)
	}
}

func TestExtractMiss(t *testing.T) {
	e := &Extract{
		Pattern:  regexp.MustCompile(`Price\s*\$([0-9,]+)`),
		Fallback: "850000",
	}
	got := e.Run("no price box here")
	if !got.Defaulted {
		t.Fatal("miss should be tagged")
	}
	if got.Value != "850000" {
		t.Errorf("value = %q, want fallback", got.Value)
	}
}

func TestMetaExtractHit(t *testing.T) {
	m := &MetaExtract{
		Pattern: regexp.MustCompile(`Price \$([0-9,]+) Seats (\d+) Guns (.+?) and (.+?)\.`),
		Fields: []MetaField{
			{Key: "price", Fallback: "0", Int: true},
			{Key: "seats", Fallback: "0", Int: true},
			{Key: "guns", Fallback: "none", List: true},
			{Key: "guns", Fallback: "none", List: true},
		},
	}
	fields, defaulted := m.Run("Price $1,234,000 Seats 2 Guns 30mm cannon and missiles.")
	if defaulted {
		t.Fatal("pattern should have matched")
	}
	if fields["price"] != 1234000 {
		t.Errorf("price = %v", fields["price"])
	}
	if fields["seats"] != 2 {
		t.Errorf("seats = %v", fields["seats"])
	}
	want := []any{"30mm cannon", "missiles"}
	if !reflect.DeepEqual(fields["guns"], want) {
		t.Errorf("guns = %v, want %v", fields["guns"], want)
	}
}

func TestMetaExtractMissUsesFallbacks(t *testing.T) {
	m := &MetaExtract{
		Pattern: regexp.MustCompile(`Speed (\d+) MPH Top (.+?) MPH`),
		Fields: []MetaField{
			{Key: "speed_min", Fallback: "275", Int: true},
			{Key: "speed_max", Fallback: "[TBA]", Int: true},
		},
	}
	fields, defaulted := m.Run("nothing matches")
	if !defaulted {
		t.Fatal("miss should be tagged")
	}
	if fields["speed_min"] != 275 {
		t.Errorf("speed_min = %v", fields["speed_min"])
	}
	if fields["speed_max"] != nil {
		t.Errorf("unparsable int fallback should be nil, got %v", fields["speed_max"])
	}
}

func TestEntitiesRegistry(t *testing.T) {
	entities := Entities()
	if len(entities) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(entities))
	}
	wantNames := []string{"P-51 Mustang", "Spitfire", "MiG-29 Fulcrum"}
	if got := Names(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("Names() = %v, want %v", got, wantNames)
	}
	if _, ok := Lookup("mig-29 fulcrum"); !ok {
		t.Error("Lookup should be case-insensitive")
	}
	if _, ok := Lookup("B-2 Spirit"); ok {
		t.Error("Lookup should miss unknown names")
	}
}

func TestEntityShapes(t *testing.T) {
	wantChunks := map[string]int{
		"P-51 Mustang":   8,
		"Spitfire":       10,
		"MiG-29 Fulcrum": 9,
	}
	for _, e := range Entities() {
		if e.EntityType != "aircraft" {
			t.Errorf("%s: entity_type = %q", e.Name, e.EntityType)
		}
		if e.SourceText == "" && e.SourceFile == "" {
			t.Errorf("%s: no source text", e.Name)
		}
		if got := len(e.Chunks); got != wantChunks[e.Name] {
			t.Errorf("%s: %d chunks, want %d", e.Name, got, wantChunks[e.Name])
		}
		seen := map[string]bool{}
		for _, c := range e.Chunks {
			if seen[c.Suffix] {
				t.Errorf("%s: duplicate chunk suffix %q", e.Name, c.Suffix)
			}
			seen[c.Suffix] = true
			if !domain.ValidInfoTypes[c.InfoType] {
				t.Errorf("%s/%s: unknown info_type %q", e.Name, c.Suffix, c.InfoType)
			}
			if c.Text == "" && c.TextFrom == nil {
				t.Errorf("%s/%s: chunk has neither text nor extraction", e.Name, c.Suffix)
			}
		}
	}
}

func TestScrubIdempotentOverEntitySources(t *testing.T) {
	for _, e := range Entities() {
		if e.SourceText == "" {
			continue
		}
		s := scrub.New(e.ExtraRules...)
		once := s.Scrub(e.SourceText)
		if twice := s.Scrub(once); once != twice {
			t.Errorf("%s: scrub not idempotent over source text", e.Name)
		}
	}
}

func mig29Cleaned(t *testing.T) string {
	t.Helper()
	spec := MiG29Fulcrum()
	return scrub.New(spec.ExtraRules...).Scrub(spec.SourceText)
}

func TestMiG29ScrubRemovesNavigation(t *testing.T) {
	cleaned := mig29Cleaned(t)
	for _, junk := range []string{"SIGN IN TO EDIT", "1Overview", "3.1Firepower", "Collapse"} {
		if strings.Contains(cleaned, junk) {
			t.Errorf("navigation artifact %q survived scrubbing", junk)
		}
	}
	if !strings.Contains(cleaned, "Overview\nMiG-29 Fulcrum") {
		t.Error("Overview heading lost")
	}
}

func TestMiG29OverviewExtraction(t *testing.T) {
	cleaned := mig29Cleaned(t)
	spec := MiG29Fulcrum()
	var chunk ChunkSpec
	for _, c := range spec.Chunks {
		if c.Suffix == "overview_full_text" {
			chunk = c
		}
	}
	if chunk.TextFrom == nil {
		t.Fatal("overview chunk should extract from page text")
	}
	ex := chunk.TextFrom.Run(cleaned)
	if ex.Defaulted {
		t.Fatal("overview should extract from the real page")
	}
	if !strings.HasPrefix(ex.Value, "Known for its easy Operation") {
		t.Errorf("overview starts %q", head(ex.Value, 40))
	}
	if !strings.HasSuffix(ex.Value, "the MiG-29 may falter.") {
		t.Errorf("overview ends %q", tail(ex.Value, 40))
	}
}

func TestMiG29HistoryExtraction(t *testing.T) {
	cleaned := mig29Cleaned(t)
	spec := MiG29Fulcrum()
	var chunk ChunkSpec
	for _, c := range spec.Chunks {
		if c.Suffix == "history" {
			chunk = c
		}
	}
	ex := chunk.TextFrom.Run(cleaned)
	if ex.Defaulted {
		t.Fatal("history should extract from the real page")
	}
	if !strings.HasPrefix(ex.Value, "During the Vietnam war") {
		t.Errorf("history starts %q", head(ex.Value, 40))
	}
	if strings.Contains(ex.Value, "Armament Stats") {
		t.Error("history should stop before the stats tables")
	}
}

// The General Information box interleaves labels and values in the export
// ("Speed (Minimum)Speed (Maximum)275 MPH[TBA] MPH"), so the structured
// pattern misses and every field takes its fallback. The tagged outcome is
// what makes that visible.
func TestMiG29GeneralInfoFallsBack(t *testing.T) {
	cleaned := mig29Cleaned(t)
	spec := MiG29Fulcrum()
	chunk := spec.Chunks[0]
	if chunk.Suffix != "general_info" {
		t.Fatalf("first chunk is %q", chunk.Suffix)
	}
	fields, defaulted := chunk.MetaFrom.Run(cleaned)
	if !defaulted {
		t.Fatal("general info extraction should miss on the interleaved export")
	}
	if fields["price"] != 850000 {
		t.Errorf("price = %v", fields["price"])
	}
	if fields["speed_max_display"] != "[TBA]" {
		t.Errorf("speed_max_display = %v", fields["speed_max_display"])
	}
	if fields["seating_capacity"] != 2 {
		t.Errorf("seating_capacity = %v", fields["seating_capacity"])
	}
	arm, _ := fields["initial_armament_summary"].([]any)
	if len(arm) != 2 {
		t.Errorf("armament summary = %v", arm)
	}
	util, _ := fields["utility"].([]any)
	if len(util) != 3 {
		t.Errorf("utility = %v", util)
	}
}

func head(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func tail(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}
