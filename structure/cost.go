package structure

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// CostStore persists the user-defined cost overlay across restarts. The
// journal package provides the SQLite implementation.
type CostStore interface {
	SaveCost(name string, legs int) error
	DeleteCost(name string) error
}

// builtinLegs maps canonical structure type names to round-trip entry legs.
var builtinLegs = map[string]int{
	TypeCalendar:     1,
	TypeButterfly:    2,
	Type3moButterfly: 2,
	TypeCondor:       2,
	Type3moCondor:    2,
	Type3Fly:         2,
	TypeDFly:         4,
	Type3DFly:        4,
	TypeFlyCondor:    6,
	TypeOutright:     1,
}

// legPatterns is the substring fallback for full structure names that match
// neither table, evaluated top-down (most legs / most specific first).
var legPatterns = []struct {
	keyword string
	legs    int
}{
	{TypeFlyCondor, 6},
	{Type3DFly, 4},
	{TypeDFly, 4},
	{Type3Fly, 2},
	{TypeButterfly, 2},
	{TypeCondor, 2},
	{TypeCalendar, 1},
}

const defaultLegs = 1

// CostTable maps structure names to the leg count used for round-trip cost.
// The built-in table is fixed; Add and Remove touch only the custom overlay
// and write through to the store. Reads and writes are lock-guarded so a P&L
// computation can snapshot the table without seeing a half-applied update.
type CostTable struct {
	mu     sync.RWMutex
	custom map[string]int
	store  CostStore
	log    *zap.Logger
}

// NewCostTable builds a table over an initial custom overlay (typically
// loaded from the journal at startup). store and log may be nil.
func NewCostTable(custom map[string]int, store CostStore, log *zap.Logger) *CostTable {
	if log == nil {
		log = zap.NewNop()
	}
	c := make(map[string]int, len(custom))
	for k, v := range custom {
		c[k] = v
	}
	return &CostTable{custom: c, store: store, log: log}
}

// LegsFor resolves the round-trip entry leg count for a structure name.
// Lookup order: custom exact, built-in exact, case-insensitive in either,
// substring pattern fallback, then a logged default. It never fails: P&L must
// not block on an unrecognized structure.
func (t *CostTable) LegsFor(name string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.legsForLocked(name)
}

func (t *CostTable) legsForLocked(name string) int {
	if legs, ok := t.custom[name]; ok {
		return legs
	}
	if legs, ok := builtinLegs[name]; ok {
		return legs
	}

	for k, legs := range t.custom {
		if strings.EqualFold(k, name) {
			return legs
		}
	}
	for k, legs := range builtinLegs {
		if strings.EqualFold(k, name) {
			return legs
		}
	}

	lower := strings.ToLower(name)
	for _, p := range legPatterns {
		if strings.Contains(lower, strings.ToLower(p.keyword)) {
			return p.legs
		}
	}

	t.log.Warn("no cost entry for structure, using default legs",
		zap.String("structure", name), zap.Int("legs", defaultLegs))
	return defaultLegs
}

// Add sets a custom leg count and persists it.
func (t *CostTable) Add(name string, legs int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("structure name is required")
	}
	if legs <= 0 {
		return fmt.Errorf("legs must be positive, got %d", legs)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.store != nil {
		if err := t.store.SaveCost(name, legs); err != nil {
			return fmt.Errorf("persist cost: %w", err)
		}
	}
	t.custom[name] = legs
	return nil
}

// Remove drops a custom entry; built-in entries cannot be removed.
func (t *CostTable) Remove(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.custom[name]; !ok {
		return fmt.Errorf("no custom cost entry for %q", name)
	}
	if t.store != nil {
		if err := t.store.DeleteCost(name); err != nil {
			return fmt.Errorf("persist cost removal: %w", err)
		}
	}
	delete(t.custom, name)
	return nil
}

// Custom returns a copy of the overlay, for listing.
func (t *CostTable) Custom() map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]int, len(t.custom))
	for k, v := range t.custom {
		out[k] = v
	}
	return out
}

// Builtin returns a copy of the built-in table, for listing.
func Builtin() map[string]int {
	out := make(map[string]int, len(builtinLegs))
	for k, v := range builtinLegs {
		out[k] = v
	}
	return out
}

// Snapshot resolves every name in names once, under a single read lock, and
// returns a fixed lookup. A P&L computation prices all its matches from one
// snapshot so a concurrent Add cannot split a computation across two table
// states.
func (t *CostTable) Snapshot(names []string) map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]int, len(names))
	for _, n := range names {
		out[n] = t.legsForLocked(n)
	}
	return out
}
