package structure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records write-throughs from the cost table.
type fakeStore struct {
	saved   map[string]int
	deleted []string
	fail    bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: map[string]int{}}
}

func (s *fakeStore) SaveCost(name string, legs int) error {
	if s.fail {
		return errors.New("store down")
	}
	s.saved[name] = legs
	return nil
}

func (s *fakeStore) DeleteCost(name string) error {
	if s.fail {
		return errors.New("store down")
	}
	s.deleted = append(s.deleted, name)
	return nil
}

func TestLegsForLookupOrder(t *testing.T) {
	t.Parallel()

	table := NewCostTable(map[string]int{"SON Sep26 D-Fly": 5}, nil, nil)

	tests := []struct {
		name      string
		structure string
		legs      int
	}{
		{"custom_exact_wins", "SON Sep26 D-Fly", 5},
		{"builtin_exact", "Butterfly", 2},
		{"case_insensitive_custom", "son sep26 d-fly", 5},
		{"case_insensitive_builtin", "BUTTERFLY", 2},
		{"pattern_dfly", "SON Dec26 D-Fly", 4},
		{"pattern_fly_condor", "SON Jun26 Fly Condor", 6},
		{"pattern_three_dfly", "SO3 Mar26 3 D-Fly", 4},
		{"pattern_three_fly", "SO3 Dec25 3 Fly", 2},
		{"pattern_condor", "SO3 Mar26 Condor", 2},
		{"pattern_calendar", "SO3 Mar26-Jun26 Calendar", 1},
		{"default_with_warning", "TOTALLY UNKNOWN", 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.legs, table.LegsFor(tt.structure))
		})
	}
}

// The Fly Condor and 3 D-Fly patterns sit above the general D-Fly pattern;
// reordering them would misprice every fly-condor.
func TestLegPatternPrecedence(t *testing.T) {
	t.Parallel()

	table := NewCostTable(nil, nil, nil)
	assert.Equal(t, 6, table.LegsFor("SON Jun26 Fly Condor"))
	assert.Equal(t, 4, table.LegsFor("SON Sep26 3 D-Fly"))
}

func TestCostTableAddRemove(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	table := NewCostTable(nil, store, nil)

	require.NoError(t, table.Add("My Custom Spread", 3))
	assert.Equal(t, 3, table.LegsFor("My Custom Spread"))
	assert.Equal(t, 3, store.saved["My Custom Spread"])

	require.NoError(t, table.Remove("My Custom Spread"))
	assert.Contains(t, store.deleted, "My Custom Spread")
	assert.Equal(t, 1, table.LegsFor("My Custom Spread")) // back to default

	assert.Error(t, table.Remove("never added"))
	assert.Error(t, table.Add("", 2))
	assert.Error(t, table.Add("x", 0))
}

// A failed write-through must leave the in-memory overlay untouched.
func TestCostTableStoreFailure(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.fail = true
	table := NewCostTable(nil, store, nil)

	assert.Error(t, table.Add("My Custom Spread", 3))
	assert.Equal(t, 1, table.LegsFor("My Custom Spread"))
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	table := NewCostTable(map[string]int{"A": 7}, nil, nil)
	snap := table.Snapshot([]string{"A", "SON Sep26 D-Fly"})

	assert.Equal(t, 7, snap["A"])
	assert.Equal(t, 4, snap["SON Sep26 D-Fly"])
}
