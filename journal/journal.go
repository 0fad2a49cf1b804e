// Package journal persists the trade log, the custom structure-cost overlay
// and the pricing constants. Everything downstream (books, matches, stats) is
// recomputed from the trade log; only what this package stores survives a
// restart.
package journal

import (
	"github.com/spreadkit/spreadbook/config"
	"github.com/spreadkit/spreadbook/trade"
)

type Journal interface {
	SaveTrade(trade.Trade) error
	SaveTrades([]trade.Trade) error
	ListTrades() ([]trade.Trade, error)
	DeleteTrade(id string) error

	// Structure-cost overlay; satisfies structure.CostStore.
	SaveCost(name string, legs int) error
	DeleteCost(name string) error
	ListCosts() (map[string]int, error)

	SavePricing(config.Pricing) error
	LoadPricing() (config.Pricing, bool, error)

	Close() error
}
