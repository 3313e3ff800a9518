package domain

import "testing"

func TestRecordID(t *testing.T) {
	cases := []struct {
		name, suffix, want string
	}{
		{"P-51 Mustang", "general_info", "p-51_mustang_general_info"},
		{"Spitfire", "stats_speed", "spitfire_stats_speed"},
		{"MiG-29 Fulcrum", "history", "mig-29_fulcrum_history"},
	}
	for _, c := range cases {
		if got := RecordID(c.name, c.suffix); got != c.want {
			t.Errorf("RecordID(%q, %q) = %q, want %q", c.name, c.suffix, got, c.want)
		}
	}
}

func validRecord() VectorRecord {
	return VectorRecord{
		ID:     "p-51_mustang_general_info",
		Values: []float32{0.1, 0.2, 0.3},
		Metadata: map[string]any{
			"entity_type": "aircraft",
			"item_name":   "P-51 Mustang",
			"info_type":   InfoGeneral,
		},
		TextContent: "some text",
	}
}

func TestValidateRecordValid(t *testing.T) {
	if err := ValidateRecord(validRecord(), 3); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateRecordEmptyID(t *testing.T) {
	r := validRecord()
	r.ID = ""
	if err := ValidateRecord(r, 3); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestValidateRecordWrongDims(t *testing.T) {
	r := validRecord()
	if err := ValidateRecord(r, 1536); err == nil {
		t.Fatal("expected error for short vector")
	}
}

func TestValidateRecordEmptyTextEmptyVector(t *testing.T) {
	r := validRecord()
	r.TextContent = "   "
	r.Values = []float32{}
	if err := ValidateRecord(r, 1536); err != nil {
		t.Fatalf("empty text with empty vector should validate: %v", err)
	}
}

func TestValidateRecordEmptyTextNonEmptyVector(t *testing.T) {
	r := validRecord()
	r.TextContent = ""
	if err := ValidateRecord(r, 3); err == nil {
		t.Fatal("expected error for vector on empty text")
	}
}

func TestValidateRecordMissingMetadata(t *testing.T) {
	r := validRecord()
	delete(r.Metadata, "item_name")
	if err := ValidateRecord(r, 3); err == nil {
		t.Fatal("expected error for missing item_name")
	}
}

func TestValidateRecordUnknownInfoType(t *testing.T) {
	r := validRecord()
	r.Metadata["info_type"] = "trivia"
	if err := ValidateRecord(r, 3); err == nil {
		t.Fatal("expected error for unknown info_type")
	}
}
