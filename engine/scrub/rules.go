package scrub

import "regexp"

// Rule is one boilerplate-removal step: a pattern and its replacement. Rules
// are data so new source formats can be handled without touching Scrub.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

// DefaultRules strip the navigation artifacts the wiki export leaves behind.
var DefaultRules = []Rule{
	// "SIGN IN TO EDIT" banner and whatever trails it on that line.
	{
		Name:    "sign-in-banner",
		Pattern: regexp.MustCompile(`SIGN IN TO EDIT.*`),
		Replace: "",
	},
	// Table-of-contents block between "Contents [hide]" and the first
	// recognized section heading. The heading is captured and kept.
	{
		Name:    "toc-block",
		Pattern: regexp.MustCompile(`(?is)Contents\s*\[hide\].*?(Overview|\d+\s*Overview|\d+\s*Stats|\d+\s*Firepower|\d+\s*Speed|\d+\s*Health)`),
		Replace: "$1",
	},
	// Leftover TOC entries: lines holding only a number or dotted number.
	{
		Name:    "toc-number-lines",
		Pattern: regexp.MustCompile(`(?m)^[ \t]*\d+(\.\d+)?[ \t]*$`),
		Replace: "",
	},
}

// TOCListRule matches the bare "Contents" list variant some pages use, where
// the block is a run of numbered section names with no [hide] marker.
func TOCListRule(entries string) Rule {
	return Rule{
		Name:    "toc-list",
		Pattern: regexp.MustCompile(`(?s)Contents\s*` + entries),
		Replace: "",
	}
}

// LiteralRule removes every occurrence of a fixed string, e.g. the "Collapse"
// widget label embedded in stat tables.
func LiteralRule(name, literal string) Rule {
	return Rule{
		Name:    name,
		Pattern: regexp.MustCompile(regexp.QuoteMeta(literal)),
		Replace: "",
	}
}
