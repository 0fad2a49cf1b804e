// Package stats derives trading-performance statistics from match history.
package stats

import (
	"math"
	"sort"

	"github.com/spreadkit/spreadbook/config"
	"github.com/spreadkit/spreadbook/fifo"
)

// TickBucket is one bin of the tick-capture distribution.
type TickBucket struct {
	Label    string  `json:"label"` // "1".."4", "5+"
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`  // of winning matches
	GrossPnL float64 `json:"grossPnL"` // summed gross dollars in this bin
}

// Stats is the aggregate view over a match list. Every field is zero for an
// empty list; nothing comes back NaN.
type Stats struct {
	TotalMatches int `json:"totalMatches"`
	Wins         int `json:"wins"`
	Losses       int `json:"losses"`
	Scratches    int `json:"scratches"`

	WinRate     float64 `json:"winRate"`     // % of decisive matches
	ScratchRate float64 `json:"scratchRate"` // % of all matches

	GrossProfit  float64 `json:"grossProfit"` // dollars, wins only
	GrossLoss    float64 `json:"grossLoss"`   // dollars, absolute
	ProfitFactor float64 `json:"profitFactor"`
	AvgWin       float64 `json:"avgWin"`
	AvgLoss      float64 `json:"avgLoss"` // positive

	NetPnL      float64 `json:"netPnL"`
	TotalRTCost float64 `json:"totalRTCost"`
	Expectancy  float64 `json:"expectancy"` // dollars per match

	AvgTicksWon  float64      `json:"avgTicksWon"`
	AvgTicksLost float64      `json:"avgTicksLost"` // positive
	TickBuckets  []TickBucket `json:"tickBuckets"`
	TopBuckets   []TickBucket `json:"topBuckets"` // top 3 by count

	Sharpe  float64 `json:"sharpe"`
	Sortino float64 `json:"sortino"`

	MaxDrawdown    float64 `json:"maxDrawdown"`    // dollars
	MaxDrawdownPct float64 `json:"maxDrawdownPct"` // of the running peak

	LongestWinStreak  int `json:"longestWinStreak"`
	LongestLossStreak int `json:"longestLossStreak"`
	CurrentStreak     int `json:"currentStreak"` // signed: >0 wins, <0 losses
}

var bucketLabels = []string{"1", "2", "3", "4", "5+"}

// Compute derives statistics from a match list. A match is a win on positive
// gross dollars, a loss on negative, a scratch on exactly zero — scratches
// still paid the round-trip cost but sit outside both the win and loss
// buckets and outside the win-rate denominator.
func Compute(matches []fifo.Match, pricing config.Pricing) Stats {
	var s Stats
	s.TotalMatches = len(matches)
	if s.TotalMatches == 0 {
		s.TickBuckets = emptyBuckets()
		return s
	}

	// Streaks and drawdown read match history chronologically by exit.
	ordered := make([]fifo.Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(a, b int) bool {
		if !ordered[a].ClosedAt.Equal(ordered[b].ClosedAt) {
			return ordered[a].ClosedAt.Before(ordered[b].ClosedAt)
		}
		return ordered[a].ExitOrder < ordered[b].ExitOrder
	})

	var (
		ticksWon, ticksLost float64
		returns             = make([]float64, 0, len(ordered))
		buckets             = emptyBuckets()
	)

	for _, m := range ordered {
		s.NetPnL += m.NetPnLDollars
		s.TotalRTCost += m.RTCost
		returns = append(returns, m.NetPnLDollars)

		switch {
		case m.PnLDollars > 0:
			s.Wins++
			s.GrossProfit += m.PnLDollars
			t := captureTicks(m, pricing.TickSize)
			ticksWon += float64(t)
			bin := bucketFor(t)
			buckets[bin].Count++
			buckets[bin].GrossPnL += m.PnLDollars
		case m.PnLDollars < 0:
			s.Losses++
			s.GrossLoss += -m.PnLDollars
			ticksLost += float64(-captureTicks(m, pricing.TickSize))
		default:
			s.Scratches++
		}
	}

	if decisive := s.Wins + s.Losses; decisive > 0 {
		s.WinRate = float64(s.Wins) / float64(decisive) * 100
	}
	s.ScratchRate = float64(s.Scratches) / float64(s.TotalMatches) * 100

	switch {
	case s.GrossLoss > 0:
		s.ProfitFactor = s.GrossProfit / s.GrossLoss
	case s.GrossProfit > 0:
		s.ProfitFactor = math.Inf(1)
	}

	if s.Wins > 0 {
		s.AvgWin = s.GrossProfit / float64(s.Wins)
		s.AvgTicksWon = ticksWon / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLoss = s.GrossLoss / float64(s.Losses)
		s.AvgTicksLost = ticksLost / float64(s.Losses)
	}

	// Expectancy over all matches, rates as fractions.
	winFrac := float64(s.Wins) / float64(s.TotalMatches)
	lossFrac := float64(s.Losses) / float64(s.TotalMatches)
	s.Expectancy = winFrac*s.AvgWin - lossFrac*s.AvgLoss

	for i := range buckets {
		if s.Wins > 0 {
			buckets[i].Percent = float64(buckets[i].Count) / float64(s.Wins) * 100
		}
	}
	s.TickBuckets = buckets
	s.TopBuckets = topBuckets(buckets, 3)

	s.Sharpe = sharpe(returns)
	s.Sortino = sortino(returns)
	s.MaxDrawdown, s.MaxDrawdownPct = maxDrawdown(ordered)
	s.LongestWinStreak, s.LongestLossStreak, s.CurrentStreak = streaks(ordered)

	return s
}

// captureTicks is the gross price movement of a match in ticks, not
// quantity-weighted. Positive means the position moved in the trade's favor.
func captureTicks(m fifo.Match, tickSize float64) int {
	if tickSize == 0 {
		return 0
	}
	move := m.Close.Price - m.Open.Price
	if m.Type == fifo.CoverShort {
		move = m.Open.Price - m.Close.Price
	}
	return int(math.Round(move / tickSize))
}

func emptyBuckets() []TickBucket {
	out := make([]TickBucket, len(bucketLabels))
	for i, l := range bucketLabels {
		out[i] = TickBucket{Label: l}
	}
	return out
}

func bucketFor(ticks int) int {
	switch {
	case ticks <= 1:
		return 0
	case ticks >= 5:
		return 4
	default:
		return ticks - 1
	}
}

func topBuckets(buckets []TickBucket, n int) []TickBucket {
	sorted := make([]TickBucket, len(buckets))
	copy(sorted, buckets)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Count > sorted[b].Count })
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// sharpe is mean/stddev of the per-match net-dollar series, population
// standard deviation, zero risk-free rate.
func sharpe(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	mean := meanOf(returns)
	var variance float64
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns))
	sd := math.Sqrt(variance)
	if sd == 0 {
		if mean > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return mean / sd
}

// sortino divides the mean by the downside deviation. The variance average
// uses the count of all returns, not just the negative ones; see
// downsideDeviation for the alternative.
func sortino(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	mean := meanOf(returns)
	dd := downsideDeviation(returns, false)
	if dd == 0 {
		if mean > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return mean / dd
}

// downsideDeviation is the RMS of the negative returns. With negOnlyDenom the
// squared sum is averaged over the negative count instead of the full count —
// both conventions exist in the wild and produce materially different
// Sortino values; the package default is the full-count average.
func downsideDeviation(returns []float64, negOnlyDenom bool) float64 {
	var sum float64
	neg := 0
	for _, r := range returns {
		if r < 0 {
			sum += r * r
			neg++
		}
	}
	n := len(returns)
	if negOnlyDenom {
		n = neg
	}
	if n == 0 {
		return 0
	}
	return math.Sqrt(sum / float64(n))
}

// maxDrawdown walks cumulative daily net P&L and reports the deepest drop
// from a running peak, in dollars and as a percentage of that peak.
func maxDrawdown(ordered []fifo.Match) (dd, ddPct float64) {
	if len(ordered) == 0 {
		return 0, 0
	}

	var days []string
	daily := map[string]float64{}
	for _, m := range ordered {
		day := m.CloseDate()
		if _, ok := daily[day]; !ok {
			days = append(days, day)
		}
		daily[day] += m.NetPnLDollars
	}
	sort.Strings(days)

	var cum, peak float64
	for _, day := range days {
		cum += daily[day]
		if cum > peak {
			peak = cum
		}
		drop := peak - cum
		if drop > dd {
			dd = drop
			if peak > 0 {
				ddPct = drop / peak * 100
			}
		}
	}
	return dd, ddPct
}

// streaks scans match history in exit order. A scratch ends the running
// streak without starting a new one.
func streaks(ordered []fifo.Match) (longestWin, longestLoss, current int) {
	for _, m := range ordered {
		switch {
		case m.PnLDollars > 0:
			if current > 0 {
				current++
			} else {
				current = 1
			}
			if current > longestWin {
				longestWin = current
			}
		case m.PnLDollars < 0:
			if current < 0 {
				current--
			} else {
				current = -1
			}
			if -current > longestLoss {
				longestLoss = -current
			}
		default:
			current = 0
		}
	}
	return longestWin, longestLoss, current
}

func meanOf(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
