package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         string
		instrument string
		tenor      string
		typ        string
		span       int
	}{
		{"dfly", "SON Sep26 D-Fly", "SON", "Sep26", TypeDFly, 0},
		{"three_dfly", "SON Sep26 3 D-Fly", "SON", "Sep26", Type3DFly, 0},
		{"three_fly", "SO3 Dec25 3 Fly", "SO3", "Dec25", Type3Fly, 0},
		{"fly_condor", "SON Jun26 Fly Condor", "SON", "Jun26", TypeFlyCondor, 0},
		{"butterfly", "ER3 Jun26 Butterfly", "ER3", "Jun26", TypeButterfly, 0},
		{"threemo_butterfly", "SO3 Mar26 3mo Butterfly", "SO3", "Mar26", Type3moButterfly, 0},
		{"condor", "SO3 Mar26 Condor", "SO3", "Mar26", TypeCondor, 0},
		{"calendar_3mo", "SO3 Mar26-Jun26 Calendar", "SO3", "Mar26-Jun26", TypeCalendar, 3},
		{"calendar_6mo", "SO3 Mar26-Sep26 Calendar", "SO3", "Mar26-Sep26", TypeCalendar, 6},
		{"calendar_9mo", "SO3 Mar26-Dec26 Calendar", "SO3", "Mar26-Dec26", TypeCalendar, 9},
		{"calendar_12mo", "SO3 Mar26-Mar27 Calendar", "SO3", "Mar26-Mar27", TypeCalendar, 12},
		{"calendar_bare_tenor_pair", "ER3 Mar26-Jun26", "ER3", "Mar26-Jun26", TypeCalendar, 3},
		{"outright", "SA3 Dec25", "SA3", "Dec25", TypeOutright, 0},
		{"unknown", "WHEAT SPREAD XX", "", "", TypeUnknown, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			md := ParseMetadata(tt.in)
			assert.Equal(t, tt.instrument, md.Instrument)
			assert.Equal(t, tt.tenor, md.Tenor)
			assert.Equal(t, tt.typ, md.Type)
			assert.Equal(t, tt.span, md.CalendarSpan)
		})
	}
}

func TestDisplayType(t *testing.T) {
	t.Parallel()

	md := ParseMetadata("SO3 Mar26-Sep26 Calendar")
	assert.Equal(t, "6mo Calendar", md.DisplayType())

	md = ParseMetadata("SON Sep26 D-Fly")
	assert.Equal(t, "D-Fly", md.DisplayType())
}
