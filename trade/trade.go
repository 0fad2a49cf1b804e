// Package trade defines the fill record every other package consumes.
package trade

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spreadkit/spreadbook/pkg/id"
)

// Side is the direction of a fill.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// ParseSide maps the side keywords traders actually type to a Side.
func ParseSide(s string) (Side, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "B", "BUY", "BOUGHT", "LONG":
		return Buy, true
	case "S", "SELL", "SOLD", "SHORT":
		return Sell, true
	}
	return "", false
}

// Trade is one fill. It is immutable once created: downstream books, matches
// and statistics are all recomputed projections over a []Trade, never edits.
type Trade struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"` // local fill date+time, no tz conversion
	Exchange  string    `json:"exchange"`
	Structure string    `json:"structure"` // normalized, the grouping key
	// OriginalStructure is the structure name as found in the input,
	// before normalization.
	OriginalStructure string  `json:"originalStructure"`
	Side              Side    `json:"side"`
	Quantity          int     `json:"quantity"`
	Price             float64 `json:"price"` // spreads trade negative, sign is meaningful
}

// Manual-entry validation errors. Surfaced synchronously; no partial trade is
// ever created.
var (
	ErrMissingStructure = errors.New("structure is required")
	ErrMissingSide      = errors.New("side is required")
	ErrMissingQuantity  = errors.New("quantity must be a positive lot count")
)

// ManualEntry is the structured input for a hand-entered fill. Structure,
// Side and Quantity are mandatory; everything else has a default.
type ManualEntry struct {
	Date      string // any format the parse package accepts; empty or bad -> now
	Time      string // HH:MM[:SS]; empty -> midnight of Date
	Exchange  string // empty -> "MANUAL"
	Structure string
	Side      string
	Quantity  int
	Price     float64
}

// NewManual validates a ManualEntry and builds a Trade from it. The caller
// normalizes the structure name first (structure.Normalize); this function
// only validates presence.
func NewManual(e ManualEntry, at time.Time) (Trade, error) {
	if strings.TrimSpace(e.Structure) == "" {
		return Trade{}, ErrMissingStructure
	}
	side, ok := ParseSide(e.Side)
	if !ok {
		return Trade{}, ErrMissingSide
	}
	if e.Quantity <= 0 {
		return Trade{}, ErrMissingQuantity
	}

	exch := strings.TrimSpace(e.Exchange)
	if exch == "" {
		exch = "MANUAL"
	}

	return Trade{
		ID:                id.New(),
		Timestamp:         at,
		Exchange:          exch,
		Structure:         e.Structure,
		OriginalStructure: e.Structure,
		Side:              side,
		Quantity:          e.Quantity,
		Price:             e.Price,
	}, nil
}

func (t Trade) String() string {
	return fmt.Sprintf("%s %s %s %d @ %g [%s]",
		t.Timestamp.Format("2006-01-02 15:04:05"), t.Side, t.Structure, t.Quantity, t.Price, t.Exchange)
}
