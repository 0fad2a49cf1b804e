package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spreadkit/spreadbook/fifo"
	"github.com/spreadkit/spreadbook/stats"
	"github.com/spreadkit/spreadbook/structure"
)

func TestPrintBook(t *testing.T) {
	t.Parallel()

	name := "SON Sep26 D-Fly"
	b := fifo.Book{
		Structure:          name,
		TotalBuyQty:        2,
		TotalSellQty:       2,
		AvgBuyPrice:        -0.025,
		AvgSellPrice:       -0.020,
		ClosedQty:          2,
		RealizedPnL:        0.01,
		RealizedPnLDollars: 25,
		TotalRTCost:        26.4,
		NetPnLDollars:      -1.4,
	}

	var out bytes.Buffer
	PrintBook(&out, structure.ParseMetadata(name), b)
	text := out.String()

	assert.Contains(t, text, name)
	assert.Contains(t, text, "Type:          D-Fly")
	assert.Contains(t, text, "Net Position:  +0")
	assert.Contains(t, text, "Net P&L:       -1.40")
	// Flat book: no open queue lines.
	assert.NotContains(t, text, "Open Long")
	assert.NotContains(t, text, "Open Short")
}

func TestPrintStats(t *testing.T) {
	t.Parallel()

	s := stats.Stats{
		TotalMatches: 3,
		Wins:         2,
		Losses:       0,
		Scratches:    1,
		WinRate:      100,
		ProfitFactor: math.Inf(1),
		Sharpe:       1.25,
		TickBuckets: []stats.TickBucket{
			{Label: "1", Count: 1, Percent: 50, GrossPnL: 12.5},
			{Label: "2", Count: 1, Percent: 50, GrossPnL: 25},
		},
	}

	var out bytes.Buffer
	PrintStats(&out, s)
	text := out.String()

	assert.Contains(t, text, "3 (2 W / 0 L / 1 scratch)")
	assert.Contains(t, text, "Profit Factor: inf")
	assert.Contains(t, text, "Sharpe:        1.25")
	assert.Equal(t, 2, strings.Count(text, "ticks:"))
}
