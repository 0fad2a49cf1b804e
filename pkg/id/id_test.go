package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsSortableAndUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	var prev string
	for i := 0; i < 1000; i++ {
		s := New()
		assert.Len(t, s, 26)
		assert.False(t, seen[s], "duplicate id %s", s)
		seen[s] = true
		if prev != "" {
			assert.Greater(t, s, prev)
		}
		prev = s
	}
}
