package parse

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/spreadkit/spreadbook/pkg/id"
	"github.com/spreadkit/spreadbook/structure"
	"github.com/spreadkit/spreadbook/trade"
)

// Row-level parse failures. ParseBatch records these per line and keeps going.
var (
	ErrTooFewFields = errors.New("too few fields")
	ErrBadDate      = errors.New("unparseable date")
	ErrBadSide      = errors.New("unrecognized side")
	ErrZeroQuantity = errors.New("quantity is zero")
)

var multiSpaceRe = regexp.MustCompile(`\s{2,}`)

// tokenize splits one raw line by a delimiter cascade: tabs first, then runs
// of two or more spaces, then commas. Each stage trims tokens and drops empty
// ones; a later stage is only tried when the previous one found fewer than
// three fields.
func tokenize(line string) []string {
	for _, split := range []func(string) []string{
		func(s string) []string { return strings.Split(s, "\t") },
		func(s string) []string { return multiSpaceRe.Split(s, -1) },
		func(s string) []string { return strings.Split(s, ",") },
	} {
		toks := clean(split(line))
		if len(toks) >= 3 {
			return toks
		}
	}
	return clean(strings.Split(line, ","))
}

func clean(toks []string) []string {
	out := toks[:0:0]
	for _, t := range toks {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ParseRow parses a single line of fill text into a Trade. Field detection by
// token classification is tried first; when it cannot resolve a structure or
// a side it falls back to strict positional parsing (the fixed 7-column
// layout date, time, exchange, structure, side, quantity, price).
func ParseRow(line string) (trade.Trade, error) {
	toks := tokenize(line)
	if len(toks) < 4 {
		return trade.Trade{}, ErrTooFewFields
	}

	var (
		dateTok, timeTok, exchTok string
		side                      trade.Side
		haveSide                  bool
		qty                       int
		haveQty                   bool
		price                     float64
		havePrice                 bool
		structTok                 string
		parts                     []string
	)

	for _, tok := range toks {
		f := Classify(tok)
		switch f.Type {
		case FieldDate:
			if dateTok == "" {
				dateTok = f.Value
			}
		case FieldTime:
			if timeTok == "" {
				timeTok = f.Value
			}
		case FieldExchange:
			if exchTok == "" {
				exchTok = f.Value
			}
		case FieldSide:
			if !haveSide {
				side, haveSide = trade.ParseSide(f.Value)
			}
		case FieldQuantity:
			if !haveQty {
				qty, _ = strconv.Atoi(f.Value)
				haveQty = true
			}
		case FieldPrice:
			// Last price wins: the price is usually the final numeric-looking
			// field, after other numbers have already been claimed.
			price, _ = strconv.ParseFloat(f.Value, 64)
			havePrice = true
		case FieldStructure:
			structTok = f.Value
		case FieldStructurePart:
			parts = append(parts, f.Value)
		}
	}

	if structTok == "" && len(parts) > 0 {
		structTok = strings.Join(parts, " ")
	}
	if structTok == "" || !haveSide {
		return parsePositional(toks)
	}

	date, ok := ParseDate(dateTok)
	if !ok {
		return trade.Trade{}, ErrBadDate
	}
	ts := ApplyTime(date, timeTok)

	if !haveQty || qty <= 0 {
		qty = 1
	}
	if exchTok == "" {
		exchTok = "UNKNOWN"
	}
	if !havePrice {
		price = 0
	}

	return trade.Trade{
		ID:                id.New(),
		Timestamp:         ts,
		Exchange:          exchTok,
		Structure:         structure.Normalize(structTok),
		OriginalStructure: structTok,
		Side:              side,
		Quantity:          qty,
		Price:             price,
	}, nil
}

// parsePositional is the strict fallback: exactly the 7-column layout
// date, time, exchange, structure, side, quantity, price.
func parsePositional(toks []string) (trade.Trade, error) {
	if len(toks) < 7 {
		return trade.Trade{}, ErrTooFewFields
	}

	date, ok := ParseDate(toks[0])
	if !ok {
		return trade.Trade{}, ErrBadDate
	}
	ts := ApplyTime(date, toks[1])

	side, ok := trade.ParseSide(toks[4])
	if !ok {
		return trade.Trade{}, ErrBadSide
	}

	qty, _ := strconv.Atoi(toks[5])
	if qty == 0 {
		return trade.Trade{}, ErrZeroQuantity
	}
	if qty < 0 {
		qty = -qty
	}

	price, _ := strconv.ParseFloat(toks[6], 64)

	return trade.Trade{
		ID:                id.New(),
		Timestamp:         ts,
		Exchange:          toks[2],
		Structure:         structure.Normalize(toks[3]),
		OriginalStructure: toks[3],
		Side:              side,
		Quantity:          qty,
		Price:             price,
	}, nil
}
