package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spreadkit/spreadbook/config"
	"github.com/spreadkit/spreadbook/pkg/id"
	"github.com/spreadkit/spreadbook/trade"
)

func openTestJournal(t *testing.T) *SQLite {
	t.Helper()
	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func sampleTrade(at time.Time, side trade.Side, qty int, price float64) trade.Trade {
	return trade.Trade{
		ID:                id.New(),
		Timestamp:         at,
		Exchange:          "ICE_L",
		Structure:         "SON Sep26 D-Fly",
		OriginalStructure: "SON Sep26 DFly",
		Side:              side,
		Quantity:          qty,
		Price:             price,
	}
}

func TestSaveAndListTrades(t *testing.T) {
	t.Parallel()
	j := openTestJournal(t)

	at := time.Date(2025, 6, 16, 16, 38, 25, 0, time.UTC)
	want := sampleTrade(at, trade.Buy, 1, -0.025)
	require.NoError(t, j.SaveTrade(want))

	got, err := j.ListTrades()
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, want.ID, got[0].ID)
	assert.True(t, got[0].Timestamp.Equal(at))
	assert.Equal(t, "ICE_L", got[0].Exchange)
	assert.Equal(t, "SON Sep26 D-Fly", got[0].Structure)
	assert.Equal(t, "SON Sep26 DFly", got[0].OriginalStructure)
	assert.Equal(t, trade.Buy, got[0].Side)
	assert.Equal(t, 1, got[0].Quantity)
	assert.InDelta(t, -0.025, got[0].Price, 1e-9)
}

// ListTrades must hand the FIFO matcher the fills in the order they were
// logged, regardless of their timestamps.
func TestListTradesPreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	j := openTestJournal(t)

	base := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	first := sampleTrade(base.Add(time.Hour), trade.Buy, 1, 10) // later clock, logged first
	second := sampleTrade(base, trade.Sell, 1, 12)
	require.NoError(t, j.SaveTrades([]trade.Trade{first, second}))

	got, err := j.ListTrades()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestSaveTradesRollsBackOnDuplicate(t *testing.T) {
	t.Parallel()
	j := openTestJournal(t)

	at := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	a := sampleTrade(at, trade.Buy, 1, 10)
	b := sampleTrade(at, trade.Sell, 1, 12)
	b.ID = a.ID // primary key collision

	require.Error(t, j.SaveTrades([]trade.Trade{a, b}))

	got, err := j.ListTrades()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteTrade(t *testing.T) {
	t.Parallel()
	j := openTestJournal(t)

	tr := sampleTrade(time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC), trade.Buy, 1, 10)
	require.NoError(t, j.SaveTrade(tr))

	require.NoError(t, j.DeleteTrade(tr.ID))
	assert.Error(t, j.DeleteTrade(tr.ID)) // already gone

	got, err := j.ListTrades()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCostsRoundTrip(t *testing.T) {
	t.Parallel()
	j := openTestJournal(t)

	require.NoError(t, j.SaveCost("SON Sep26 D-Fly", 4))
	require.NoError(t, j.SaveCost("SON Sep26 D-Fly", 6)) // upsert
	require.NoError(t, j.SaveCost("Custom Strip", 3))

	costs, err := j.ListCosts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"SON Sep26 D-Fly": 6, "Custom Strip": 3}, costs)

	require.NoError(t, j.DeleteCost("Custom Strip"))
	costs, err = j.ListCosts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"SON Sep26 D-Fly": 6}, costs)
}

func TestPricingRoundTrip(t *testing.T) {
	t.Parallel()
	j := openTestJournal(t)

	_, ok, err := j.LoadPricing()
	require.NoError(t, err)
	assert.False(t, ok)

	want := config.Pricing{TickValue: 25, TickSize: 0.01, CostPerLeg: 2.10}
	require.NoError(t, j.SavePricing(want))

	got, ok, err := j.LoadPricing()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}
