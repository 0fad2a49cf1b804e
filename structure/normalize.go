// Package structure knows how spread structures are named, typed and priced.
package structure

import (
	"regexp"
	"strings"
)

// A fixup is one step of the normalization pipeline: either a plain
// replacement or a function when the rewrite needs to inspect its match.
type fixup struct {
	re   *regexp.Regexp
	repl string
	fn   func(match []string) string
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// fixups run in a fixed order; several depend on an earlier rule having
// already canonicalized its spelling (3 D-Fly relies on D-Fly, 3 Fly relies
// on 3 D-Fly having removed itself from contention).
var fixups = []fixup{
	// D-Fly spellings: dfly, d fly, D-fly -> D-Fly.
	{re: regexp.MustCompile(`(?i)\bd[\s-]?fly\b`), repl: "D-Fly"},
	// 3 D-Fly spacing: 3D-Fly, 3-D-Fly, 3 D-Fly -> 3 D-Fly.
	{re: regexp.MustCompile(`(?i)\b3[\s-]*D-Fly\b`), repl: "3 D-Fly"},
	// 3 Fly, except when what follows makes it a different structure
	// (3 Fly Condor stays untouched for the Fly Condor rule below;
	// 3 D-Fly was already canonicalized above and no longer matches).
	{re: regexp.MustCompile(`(?i)\b3[\s-]*fly\b([\s-]*condor\b)?`), fn: func(m []string) string {
		if m[1] != "" {
			return m[0]
		}
		return "3 Fly"
	}},
	{re: regexp.MustCompile(`(?i)\bfly[\s-]*condor\b`), repl: "Fly Condor"},
	{re: regexp.MustCompile(`(?i)\b3\s*mo[\s-]*butterfly\b`), repl: "3mo Butterfly"},
	{re: regexp.MustCompile(`(?i)\b3\s*mo[\s-]*condor\b`), repl: "3mo Condor"},
	{re: regexp.MustCompile(`(?i)\bcalendar\b`), repl: "Calendar"},
	{re: regexp.MustCompile(`(?i)\bbutterfly\b`), repl: "Butterfly"},
	{re: regexp.MustCompile(`(?i)\bcondor\b`), repl: "Condor"},
	// Tenor pair: any dash character, any spacing -> single hyphen,
	// canonical month casing (mar26 - jun26 -> Mar26-Jun26).
	{re: regexp.MustCompile(`(?i)\b(mar|jun|sep|dec)(\d{2})\s*[-\x{2013}\x{2014}]+\s*(mar|jun|sep|dec)(\d{2})\b`), fn: func(m []string) string {
		return titleMonth(m[1]) + m[2] + "-" + titleMonth(m[3]) + m[4]
	}},
	// Standalone tenor and instrument casing so case-variant input lands in
	// the same book.
	{re: regexp.MustCompile(`(?i)\b(mar|jun|sep|dec)(\d{2})\b`), fn: func(m []string) string {
		return titleMonth(m[1]) + m[2]
	}},
	{re: regexp.MustCompile(`(?i)\b(so3|son|sa3|er3)\b`), fn: func(m []string) string {
		return strings.ToUpper(m[1])
	}},
}

// Normalize canonicalizes a structure name. The result is the grouping key
// for FIFO matching and cost lookup: two spellings of the same structure must
// normalize identically or their fills silently land in separate books.
// Normalize is idempotent.
func Normalize(name string) string {
	s := whitespaceRe.ReplaceAllString(strings.TrimSpace(name), " ")
	for _, f := range fixups {
		if f.fn != nil {
			s = f.re.ReplaceAllStringFunc(s, func(match string) string {
				return f.fn(f.re.FindStringSubmatch(match))
			})
			continue
		}
		s = f.re.ReplaceAllString(s, f.repl)
	}
	return s
}

func titleMonth(m string) string {
	return strings.ToUpper(m[:1]) + strings.ToLower(m[1:])
}
