package domain

import (
	"fmt"
	"strings"
)

// requiredMetadata keys every chunk carries regardless of info type.
var requiredMetadata = []string{"entity_type", "item_name", "info_type"}

// ValidateRecord checks a VectorRecord before it is appended to the sink.
// A record with non-empty text must carry a vector of exactly dims values;
// a record whose text was empty must carry an empty vector.
func ValidateRecord(r VectorRecord, dims int) error {
	if r.ID == "" {
		return fmt.Errorf("validate: id is empty")
	}
	if strings.TrimSpace(r.TextContent) == "" {
		if len(r.Values) != 0 {
			return fmt.Errorf("validate: %s: empty text with %d vector values", r.ID, len(r.Values))
		}
	} else if len(r.Values) != dims {
		return fmt.Errorf("validate: %s: vector length %d, want %d", r.ID, len(r.Values), dims)
	}
	for _, key := range requiredMetadata {
		if _, ok := r.Metadata[key]; !ok {
			return fmt.Errorf("validate: %s: metadata missing %q", r.ID, key)
		}
	}
	infoType, _ := r.Metadata["info_type"].(string)
	if !ValidInfoTypes[infoType] {
		return fmt.Errorf("validate: %s: unknown info_type %q", r.ID, infoType)
	}
	return nil
}
