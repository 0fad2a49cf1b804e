package structure

import "github.com/spreadkit/spreadbook/trade"

// Group is one structure's slice of the trade log, in the order the trades
// were logged. That order is the ground truth for FIFO matching, so it is
// never re-sorted here.
type Group struct {
	Name   string
	Meta   Metadata
	Trades []trade.Trade
}

// GroupTrades partitions a flat trade list by normalized structure name.
// Groups come back in first-seen order.
func GroupTrades(trades []trade.Trade) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, t := range trades {
		key := t.Structure
		if key == "" {
			key = Normalize(t.OriginalStructure)
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Name: key, Meta: ParseMetadata(key)})
		}
		groups[i].Trades = append(groups[i].Trades, t)
	}
	return groups
}
