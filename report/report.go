// Package report renders books and statistics as plain text.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/spreadkit/spreadbook/fifo"
	"github.com/spreadkit/spreadbook/stats"
	"github.com/spreadkit/spreadbook/structure"
)

const rule = "--------------------------------------------------"

// PrintBook writes one structure's position and realized P&L summary.
func PrintBook(w io.Writer, meta structure.Metadata, b fifo.Book) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " %s\n", b.Structure)
	fmt.Fprintln(w, "==================================================")

	if meta.Instrument != "" {
		fmt.Fprintf(w, "Instrument:    %s\n", meta.Instrument)
	}
	if meta.Tenor != "" {
		fmt.Fprintf(w, "Tenor:         %s\n", meta.Tenor)
	}
	fmt.Fprintf(w, "Type:          %s\n", meta.DisplayType())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Position")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Bought:        %d @ %.4f avg\n", b.TotalBuyQty, b.AvgBuyPrice)
	fmt.Fprintf(w, "Sold:          %d @ %.4f avg\n", b.TotalSellQty, b.AvgSellPrice)
	fmt.Fprintf(w, "Net Position:  %+d\n", b.NetPosition)
	if b.OpenLongQty > 0 {
		fmt.Fprintf(w, "Open Long:     %d @ %.4f avg\n", b.OpenLongQty, b.AvgLongPrice)
	}
	if b.OpenShortQty > 0 {
		fmt.Fprintf(w, "Open Short:    %d @ %.4f avg\n", b.OpenShortQty, b.AvgShortPrice)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Realized")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Matches:       %d (%d lots closed)\n", len(b.Matches), b.ClosedQty)
	fmt.Fprintf(w, "P&L (price):   %+.4f\n", b.RealizedPnL)
	fmt.Fprintf(w, "Gross P&L:     %+.2f\n", b.RealizedPnLDollars)
	fmt.Fprintf(w, "RT Cost:       %.2f\n", b.TotalRTCost)
	fmt.Fprintf(w, "Net P&L:       %+.2f\n", b.NetPnLDollars)
}

// PrintStats writes the aggregate performance block.
func PrintStats(w io.Writer, s stats.Stats) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Performance")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Matches:       %d (%d W / %d L / %d scratch)\n",
		s.TotalMatches, s.Wins, s.Losses, s.Scratches)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", s.WinRate)
	fmt.Fprintf(w, "Scratch Rate:  %.2f%%\n", s.ScratchRate)
	fmt.Fprintf(w, "Profit Factor: %s\n", ratio(s.ProfitFactor))
	fmt.Fprintf(w, "Expectancy:    %+.2f / match\n", s.Expectancy)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Dollars")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Gross Profit:  %.2f\n", s.GrossProfit)
	fmt.Fprintf(w, "Gross Loss:    %.2f\n", s.GrossLoss)
	fmt.Fprintf(w, "RT Costs:      %.2f\n", s.TotalRTCost)
	fmt.Fprintf(w, "Net P&L:       %+.2f\n", s.NetPnL)
	fmt.Fprintf(w, "Avg Win:       %.2f\n", s.AvgWin)
	fmt.Fprintf(w, "Avg Loss:      %.2f\n", s.AvgLoss)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Risk")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Sharpe:        %s\n", ratio(s.Sharpe))
	fmt.Fprintf(w, "Sortino:       %s\n", ratio(s.Sortino))
	fmt.Fprintf(w, "Max Drawdown:  %.2f (%.2f%%)\n", s.MaxDrawdown, s.MaxDrawdownPct)
	fmt.Fprintf(w, "Streaks:       %dW longest, %dL longest, current %+d\n",
		s.LongestWinStreak, s.LongestLossStreak, s.CurrentStreak)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tick Capture")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Avg Ticks Won: %.2f   Avg Ticks Lost: %.2f\n", s.AvgTicksWon, s.AvgTicksLost)
	for _, b := range s.TickBuckets {
		fmt.Fprintf(w, "  %-3s ticks:   %3d wins (%5.1f%%)  gross %+.2f\n",
			b.Label, b.Count, b.Percent, b.GrossPnL)
	}
}

// ratio formats a possibly infinite ratio.
func ratio(x float64) string {
	if math.IsInf(x, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", x)
}
