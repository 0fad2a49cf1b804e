// Package parse turns loosely formatted fill text into trade records.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// FieldType tags what a single input token looks like.
type FieldType int

const (
	FieldUnknown FieldType = iota
	FieldQuantity
	FieldPrice
	FieldSide
	FieldExchange
	FieldStructure
	FieldStructurePart
	FieldDate
	FieldTime
)

func (f FieldType) String() string {
	switch f {
	case FieldQuantity:
		return "quantity"
	case FieldPrice:
		return "price"
	case FieldSide:
		return "side"
	case FieldExchange:
		return "exchange"
	case FieldStructure:
		return "structure"
	case FieldStructurePart:
		return "structure_part"
	case FieldDate:
		return "date"
	case FieldTime:
		return "time"
	}
	return "unknown"
}

// Field is one classified token.
type Field struct {
	Type  FieldType
	Value string
}

var (
	numericRe = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

	// Venue codes: known prefixes (ICE_L, CMEG, ...) or a short hyphenated
	// compound. A trailing * marks give-ups on some platforms and is stripped.
	exchangeRe = regexp.MustCompile(`(?i)^(?:ICE[A-Z_]*|CME[A-Z_]*|NYMEX|COMEX|ASE|EUREX|[A-Z]{2,6}-[A-Z]{1,6})\*?$`)

	// Structure patterns, most specific first. Fly-Condor and 3-D-Fly must be
	// tested before the plain D-Fly / 3-Fly / Condor patterns or they would be
	// swallowed by the more general ones.
	structureRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(?:SO3|SON|SA3|ER3)\s+\S.*Fly[\s-]*Condor$`),
		regexp.MustCompile(`(?i)^(?:SO3|SON|SA3|ER3)\s+\S.*3[\s-]*D[\s-]*Fly$`),
		regexp.MustCompile(`(?i)^(?:SO3|SON|SA3|ER3)\s+\S.*D[\s-]*Fly$`),
		regexp.MustCompile(`(?i)^(?:SO3|SON|SA3|ER3)\s+\S.*3[\s-]*Fly$`),
		regexp.MustCompile(`(?i)^(?:SO3|SON|SA3|ER3)\s+\S.*(?:3mo\s+)?Butterfly$`),
		regexp.MustCompile(`(?i)^(?:SO3|SON|SA3|ER3)\s+\S.*(?:3mo\s+)?Condor$`),
		regexp.MustCompile(`(?i)^(?:SO3|SON|SA3|ER3)\s+\S.*Calendar$`),
		regexp.MustCompile(`(?i)^(?:SO3|SON|SA3|ER3)\s+(?:Mar|Jun|Sep|Dec)\d{2}\s*[-–]\s*(?:Mar|Jun|Sep|Dec)\d{2}$`),
		regexp.MustCompile(`(?i)^(?:SA3|ER3)\s+(?:Mar|Jun|Sep|Dec)\d{2}$`),
	}

	// Date shapes. The European numeric form constrains the month component so
	// dot-separated times (16.38.25) fall through to the time pattern below.
	dateRes = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		regexp.MustCompile(`^\d{1,2}[-/.](?:0?[1-9]|1[0-2])[-/.]\d{2,4}$`),
		regexp.MustCompile(`(?i)^(?:[A-Za-z]{3,9},?\s+)?\d{1,2}\s+[A-Za-z]{3,9},?\s+\d{4}$`),
	}

	timeRe = regexp.MustCompile(`^\d{1,2}[:.\x{00B7}]\d{2}(?:[:.\x{00B7}]\d{2})?(?:\.\d{1,6})?$`)

	// Prefixes that identify a fragment of a structure name split apart by an
	// over-eager delimiter.
	structurePartPrefixes = []string{"SO3", "SON", "SA3", "ER3", "Calendar", "Butterfly", "Condor", "Fly", "D-Fly"}
)

// Classify tags one whitespace/comma/tab-delimited token. Checks run in a
// fixed priority order and the first hit wins: numeric, side and exchange
// tokens are unambiguous and cheap, and structure names must be tested before
// the date patterns because they contain digit runs that look like dates.
func Classify(token string) Field {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return Field{FieldUnknown, token}
	}

	if numericRe.MatchString(tok) {
		if n, err := strconv.Atoi(tok); err == nil && n > 0 && n < 1000 {
			return Field{FieldQuantity, tok}
		}
		return Field{FieldPrice, tok}
	}

	if _, ok := sideKeyword(tok); ok {
		return Field{FieldSide, tok}
	}

	if exchangeRe.MatchString(tok) {
		return Field{FieldExchange, strings.TrimSuffix(tok, "*")}
	}

	for _, re := range structureRes {
		if re.MatchString(tok) {
			return Field{FieldStructure, tok}
		}
	}

	for _, re := range dateRes {
		if re.MatchString(tok) {
			return Field{FieldDate, tok}
		}
	}

	if timeRe.MatchString(tok) {
		return Field{FieldTime, tok}
	}

	for _, p := range structurePartPrefixes {
		if len(tok) >= len(p) && strings.EqualFold(tok[:len(p)], p) {
			return Field{FieldStructurePart, tok}
		}
	}

	return Field{FieldUnknown, tok}
}

func sideKeyword(tok string) (string, bool) {
	switch strings.ToUpper(tok) {
	case "B", "BUY", "BOUGHT", "LONG":
		return "BUY", true
	case "S", "SELL", "SOLD", "SHORT":
		return "SELL", true
	}
	return "", false
}
