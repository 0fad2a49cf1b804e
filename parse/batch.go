package parse

import (
	"sort"
	"strings"

	"github.com/spreadkit/spreadbook/trade"
)

// LineError records one input line that produced no trade.
type LineError struct {
	Line    int    `json:"line"`    // 1-based over the raw input
	Content string `json:"content"` // truncated to 50 chars
	Reason  string `json:"reason"`
}

// BatchResult is the output of ParseBatch. Trades are sorted ascending by
// timestamp for display; the FIFO matcher works on its own entry ordering.
type BatchResult struct {
	Trades []trade.Trade `json:"trades"`
	Errors []LineError   `json:"errors"`
}

const maxErrorContent = 50

// ParseBatch parses multi-line fill text, one fill per line. A bad line is
// recorded as a LineError and never aborts the batch.
func ParseBatch(text string) BatchResult {
	var res BatchResult

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := ParseRow(line)
		if err != nil {
			res.Errors = append(res.Errors, LineError{
				Line:    i + 1,
				Content: truncate(strings.TrimSpace(line), maxErrorContent),
				Reason:  err.Error(),
			})
			continue
		}
		res.Trades = append(res.Trades, t)
	}

	sort.SliceStable(res.Trades, func(a, b int) bool {
		return res.Trades[a].Timestamp.Before(res.Trades[b].Timestamp)
	})
	return res
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
