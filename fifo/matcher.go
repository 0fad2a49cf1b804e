package fifo

import (
	"github.com/spreadkit/spreadbook/config"
	"github.com/spreadkit/spreadbook/trade"
)

// LegSource resolves a structure name to its round-trip entry leg count.
// *structure.CostTable satisfies it.
type LegSource interface {
	LegsFor(name string) int
}

// Legs is a fixed leg count, for callers that already snapshotted the table.
type Legs int

func (l Legs) LegsFor(string) int { return int(l) }

// Compute runs FIFO matching over one structure's trades and returns the
// resulting book.
//
// Trades are processed in slice order, not timestamp order: the logged entry
// sequence is the ground truth for which position opened first, even when
// clock timestamps are out of order or identical. Callers must hand over the
// list as it was logged.
func Compute(trades []trade.Trade, structureName string, pricing config.Pricing, legs LegSource) Book {
	book := Book{Structure: structureName}

	// One leg lookup per computation: every match in this book is priced off
	// the same table state.
	legCount := 1
	if legs != nil {
		legCount = legs.LegsFor(structureName)
	}

	var buyNotional, sellNotional float64

	for i, t := range trades {
		entryIndex := i + 1

		switch t.Side {
		case trade.Buy:
			book.TotalBuyQty += t.Quantity
			buyNotional += float64(t.Quantity) * t.Price

			remaining := t.Quantity
			for remaining > 0 && len(book.ShortQueue) > 0 {
				entry := &book.ShortQueue[0]
				qty := min(remaining, entry.Quantity)

				// Profit when bought back cheaper than shorted.
				pnl := float64(qty) * (entry.Trade.Price - t.Price)
				book.append(makeMatch(*entry, t, qty, pnl, CoverShort, entryIndex, pricing, legCount))

				remaining -= qty
				entry.Quantity -= qty
				if entry.Quantity == 0 {
					book.ShortQueue = book.ShortQueue[1:]
				}
			}
			if remaining > 0 {
				book.LongQueue = append(book.LongQueue, QueueEntry{
					Trade:       t,
					Quantity:    remaining,
					OriginalQty: t.Quantity,
					EntryOrder:  entryIndex,
				})
			}

		case trade.Sell:
			book.TotalSellQty += t.Quantity
			sellNotional += float64(t.Quantity) * t.Price

			remaining := t.Quantity
			for remaining > 0 && len(book.LongQueue) > 0 {
				entry := &book.LongQueue[0]
				qty := min(remaining, entry.Quantity)

				pnl := float64(qty) * (t.Price - entry.Trade.Price)
				book.append(makeMatch(*entry, t, qty, pnl, CloseLong, entryIndex, pricing, legCount))

				remaining -= qty
				entry.Quantity -= qty
				if entry.Quantity == 0 {
					book.LongQueue = book.LongQueue[1:]
				}
			}
			if remaining > 0 {
				book.ShortQueue = append(book.ShortQueue, QueueEntry{
					Trade:       t,
					Quantity:    remaining,
					OriginalQty: t.Quantity,
					EntryOrder:  entryIndex,
				})
			}
		}
	}

	for _, e := range book.LongQueue {
		book.OpenLongQty += e.Quantity
		book.AvgLongPrice += float64(e.Quantity) * e.Trade.Price
	}
	for _, e := range book.ShortQueue {
		book.OpenShortQty += e.Quantity
		book.AvgShortPrice += float64(e.Quantity) * e.Trade.Price
	}
	if book.OpenLongQty > 0 {
		book.AvgLongPrice /= float64(book.OpenLongQty)
	} else {
		book.AvgLongPrice = 0
	}
	if book.OpenShortQty > 0 {
		book.AvgShortPrice /= float64(book.OpenShortQty)
	} else {
		book.AvgShortPrice = 0
	}
	if book.TotalBuyQty > 0 {
		book.AvgBuyPrice = buyNotional / float64(book.TotalBuyQty)
	}
	if book.TotalSellQty > 0 {
		book.AvgSellPrice = sellNotional / float64(book.TotalSellQty)
	}
	book.NetPosition = book.OpenLongQty - book.OpenShortQty

	return book
}

// makeMatch builds one immutable match record. The open-side trade is copied
// with its quantity set to what was still unmatched when the pairing
// happened.
func makeMatch(entry QueueEntry, closing trade.Trade, qty int, pnl float64, typ MatchType, exitOrder int, pricing config.Pricing, legCount int) Match {
	open := entry.Trade
	open.Quantity = entry.Quantity

	gross := dollars(pnl, pricing)
	rtCost := float64(legCount) * 2 * float64(qty) * pricing.CostPerLeg

	return Match{
		Open:          open,
		Close:         closing,
		MatchQty:      qty,
		PnL:           pnl,
		PnLDollars:    gross,
		RTCost:        rtCost,
		NetPnLDollars: gross - rtCost,
		Type:          typ,
		EntryOrder:    entry.EntryOrder,
		ExitOrder:     exitOrder,
		ClosedAt:      closing.Timestamp,
	}
}

func (b *Book) append(m Match) {
	b.Matches = append(b.Matches, m)
	b.ClosedQty += m.MatchQty
	b.RealizedPnL += m.PnL
	b.RealizedPnLDollars += m.PnLDollars
	b.TotalRTCost += m.RTCost
	b.NetPnLDollars += m.NetPnLDollars
}

// dollars converts price-unit P&L to dollars: price distance in ticks times
// the tick's dollar value. Sums accumulate in floating point; round-off over
// many small matches is accepted and only display code rounds.
func dollars(pnl float64, p config.Pricing) float64 {
	if p.TickSize == 0 {
		return 0
	}
	return pnl / p.TickSize * p.TickValue
}
