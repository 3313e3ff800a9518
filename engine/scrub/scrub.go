// Package scrub normalizes raw wiki page text before chunking. Character
// folding runs first, then an ordered list of boilerplate rules, then
// blank-line collapsing and trimming. Scrubbing is total over any input and
// idempotent.
package scrub

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var collapseBlankLines = regexp.MustCompile(`\n{3,}`)

// Scrubber applies character folding and a rule list to raw page text.
type Scrubber struct {
	rules []Rule
}

// New creates a Scrubber running DefaultRules plus any extra source-specific
// rules, in that order.
func New(extra ...Rule) *Scrubber {
	rules := make([]Rule, 0, len(DefaultRules)+len(extra))
	rules = append(rules, DefaultRules...)
	rules = append(rules, extra...)
	return &Scrubber{rules: rules}
}

// Scrub cleans raw text. Steps, in order: normalize dashes, drop everything
// else outside 7-bit ASCII, strip zero-width characters, strip control
// characters (newlines survive so line-oriented rules still apply), run the
// boilerplate rules, collapse runs of blank lines, trim.
func (s *Scrubber) Scrub(raw string) string {
	text := foldChars(raw)
	for _, rule := range s.rules {
		text = rule.Pattern.ReplaceAllString(text, rule.Replace)
	}
	text = collapseBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// ScrubFile reads a page text file and scrubs its content. A missing file is
// reported with its path and nothing is written anywhere.
func (s *Scrubber) ScrubFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("scrub: read %s: %w", path, err)
	}
	return s.Scrub(string(data)), nil
}

// foldChars performs the character-level steps: dash normalization, lossy
// ASCII fold, zero-width and control character removal.
func foldChars(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '–' || r == '—': // en dash, em dash
			b.WriteByte('-')
		case r == '\u200B' || r == '\u200C' || r == '\u200D' || r == '\uFEFF':
			// zero-width space/non-joiner/joiner, BOM
		case r > 0x7F:
			// outside 7-bit ASCII: deleted, not transliterated
		case r == '\n':
			b.WriteByte('\n')
		case r < 0x20 || r == 0x7F:
			// remaining C0 controls and DEL
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
