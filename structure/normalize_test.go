package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already_canonical", "SON Sep26 D-Fly", "SON Sep26 D-Fly"},
		{"dfly_collapsed", "son sep26 dfly", "SON Sep26 D-Fly"},
		{"dfly_spaced", "SON Sep26 d fly", "SON Sep26 D-Fly"},
		{"three_dfly_dashed", "SON Sep26 3-D-Fly", "SON Sep26 3 D-Fly"},
		{"three_dfly_tight", "SON Sep26 3D-Fly", "SON Sep26 3 D-Fly"},
		{"three_fly", "SO3 Dec25 3 fly", "SO3 Dec25 3 Fly"},
		{"three_fly_dashed", "SO3 Dec25 3-Fly", "SO3 Dec25 3 Fly"},
		{"fly_condor", "SON Jun26 fly condor", "SON Jun26 Fly Condor"},
		{"fly_condor_dashed", "SON Jun26 Fly-Condor", "SON Jun26 Fly Condor"},
		{"three_fly_condor_keeps_condor", "SON Jun26 3 fly condor", "SON Jun26 3 Fly Condor"},
		{"threemo_butterfly", "SO3 Mar26 3mo butterfly", "SO3 Mar26 3mo Butterfly"},
		{"threemo_condor", "SO3 Mar26 3 mo condor", "SO3 Mar26 3mo Condor"},
		{"calendar_cased", "SO3 Mar26-Jun26 CALENDAR", "SO3 Mar26-Jun26 Calendar"},
		{"butterfly_cased", "ER3 Jun26 BUTTERFLY", "ER3 Jun26 Butterfly"},
		{"tenor_dash_spaced", "SO3 Mar26 - Jun26 Calendar", "SO3 Mar26-Jun26 Calendar"},
		{"tenor_en_dash", "SO3 Mar26–Jun26 Calendar", "SO3 Mar26-Jun26 Calendar"},
		{"tenor_and_instrument_case", "so3 mar26-jun26 calendar", "SO3 Mar26-Jun26 Calendar"},
		{"whitespace_collapsed", "  SON   Sep26   D-Fly  ", "SON Sep26 D-Fly"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)

			// Normalization is the grouping key; it must be idempotent.
			assert.Equal(t, got, Normalize(got))
		})
	}
}

// Two spellings of the same structure must produce the same grouping key.
func TestNormalizeConverges(t *testing.T) {
	t.Parallel()

	spellings := []string{
		"SON Sep26 D-Fly",
		"son sep26 dfly",
		"SON  Sep26  d fly",
		"SON Sep26 D Fly",
	}
	want := Normalize(spellings[0])
	for _, s := range spellings {
		assert.Equal(t, want, Normalize(s), "spelling %q", s)
	}
}
