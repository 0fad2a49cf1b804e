// journal/csv.go
package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/spreadkit/spreadbook/fifo"
	"github.com/spreadkit/spreadbook/trade"
)

// WriteTradesCSV exports the trade log.
func WriteTradesCSV(w io.Writer, trades []trade.Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "timestamp", "exchange", "structure", "original_structure", "side", "quantity", "price"}); err != nil {
		return err
	}
	for _, t := range trades {
		cw.Write([]string{
			t.ID,
			t.Timestamp.Format(time.RFC3339),
			t.Exchange,
			t.Structure,
			t.OriginalStructure,
			string(t.Side),
			strconv.Itoa(t.Quantity),
			f(t.Price),
		})
	}

	cw.Flush()
	return cw.Error()
}

// WriteMatchesCSV exports realized matches.
func WriteMatchesCSV(w io.Writer, matches []fifo.Match) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"structure", "type", "match_qty", "entry_price", "exit_price", "pnl", "pnl_dollars", "rt_cost", "net_pnl_dollars", "closed_at"}); err != nil {
		return err
	}
	for _, m := range matches {
		cw.Write([]string{
			m.Open.Structure,
			string(m.Type),
			strconv.Itoa(m.MatchQty),
			f(m.Open.Price),
			f(m.Close.Price),
			f(m.PnL),
			f(m.PnLDollars),
			f(m.RTCost),
			f(m.NetPnLDollars),
			m.ClosedAt.Format(time.RFC3339),
		})
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
