// Package domain defines the record model, the info-type taxonomy, and
// validation for the vectorization pipeline. It acts as the validation gate
// before records reach the sink.
package domain

import "strings"

// VectorRecord is the unit persisted to the JSONL sink. The wire shape
// (id/values/metadata/text_content) is the interchange format consumed by the
// external vector-store loader and must not change.
type VectorRecord struct {
	ID          string         `json:"id"`
	Values      []float32      `json:"values"`
	Metadata    map[string]any `json:"metadata"`
	TextContent string         `json:"text_content"`
}

// Info types partition chunks into a closed set of categories.
const (
	InfoGeneral         = "general_info"
	InfoOverviewFull    = "overview_full_text"
	InfoOverviewSummary = "overview_summary"
	InfoArmament        = "armament"
	InfoStats           = "stats"
	InfoHistory         = "history"
	InfoCategory        = "category_membership"
)

// ValidInfoTypes enumerates accepted info_type metadata values.
var ValidInfoTypes = map[string]bool{
	InfoGeneral:         true,
	InfoOverviewFull:    true,
	InfoOverviewSummary: true,
	InfoArmament:        true,
	InfoStats:           true,
	InfoHistory:         true,
	InfoCategory:        true,
}

// RecordID builds a record identifier from the item name and a chunk suffix.
// Only spaces are substituted with underscores; hyphens and digits pass
// through: ("P-51 Mustang", "general_info") -> "p-51_mustang_general_info".
func RecordID(itemName, suffix string) string {
	return strings.ReplaceAll(strings.ToLower(itemName), " ", "_") + "_" + suffix
}
