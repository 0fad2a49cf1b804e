// Package fifo matches buy and sell fills into realized round trips.
package fifo

import (
	"time"

	"github.com/spreadkit/spreadbook/trade"
)

// MatchType says which side of the book a match closed.
type MatchType string

const (
	CloseLong  MatchType = "CLOSE_LONG"
	CoverShort MatchType = "COVER_SHORT"
)

// QueueEntry is a partially- or un-matched fill resting in the long or short
// queue. Quantity counts down as opposing fills consume it.
type QueueEntry struct {
	Trade       trade.Trade `json:"trade"`
	Quantity    int         `json:"quantity"`    // lots still open
	OriginalQty int         `json:"originalQty"` // lots at entry
	EntryOrder  int         `json:"entryOrder"`  // 1-based index into the structure's trade list
}

// Match pairs a resting entry against an opposing fill. Immutable once
// created; netPnLDollars = pnlDollars - rtCost always holds.
type Match struct {
	// Open is the opening trade with its quantity set to what was still
	// unmatched when this pairing happened; Close is the closing trade as
	// logged.
	Open  trade.Trade `json:"openTrade"`
	Close trade.Trade `json:"closeTrade"`

	MatchQty int     `json:"matchQty"`
	PnL      float64 `json:"pnl"` // price units: signed price diff x matchQty

	PnLDollars    float64 `json:"pnlDollars"` // gross
	RTCost        float64 `json:"rtCost"`
	NetPnLDollars float64 `json:"netPnLDollars"`

	Type       MatchType `json:"type"`
	EntryOrder int       `json:"entryOrder"`
	ExitOrder  int       `json:"exitOrder"`

	ClosedAt time.Time `json:"closedAt"`
}

// CloseDate is the calendar day of the closing fill, used for daily P&L
// bucketing.
func (m Match) CloseDate() string {
	return m.ClosedAt.Format("2006-01-02")
}

// Book is the per-structure result of a FIFO pass: resting queues, realized
// matches and running totals. It is a pure function of the structure's trade
// list and is recomputed from scratch on every request, never persisted.
type Book struct {
	Structure string `json:"structure"`

	LongQueue  []QueueEntry `json:"longQueue"`  // oldest first
	ShortQueue []QueueEntry `json:"shortQueue"` // oldest first
	Matches    []Match      `json:"matches"`    // in match-creation order

	TotalBuyQty  int     `json:"totalBuyQty"`
	TotalSellQty int     `json:"totalSellQty"`
	AvgBuyPrice  float64 `json:"avgBuyPrice"`  // qty-weighted over all buys
	AvgSellPrice float64 `json:"avgSellPrice"` // qty-weighted over all sells

	OpenLongQty   int     `json:"openLongQty"`
	OpenShortQty  int     `json:"openShortQty"`
	AvgLongPrice  float64 `json:"avgLongPrice"`  // qty-weighted over the resting long queue
	AvgShortPrice float64 `json:"avgShortPrice"` // qty-weighted over the resting short queue
	NetPosition   int     `json:"netPosition"`   // openLongQty - openShortQty

	ClosedQty int `json:"closedQty"` // sum of match quantities

	RealizedPnL        float64 `json:"realizedPnL"` // price units
	RealizedPnLDollars float64 `json:"realizedPnLDollars"`
	TotalRTCost        float64 `json:"totalRTCost"`
	NetPnLDollars      float64 `json:"netPnLDollars"`

	// Open positions are not marked to market; always zero.
	UnrealizedPnL float64 `json:"unrealizedPnL"`
}
