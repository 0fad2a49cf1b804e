package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		typ   FieldType
		value string
	}{
		{"small_int_is_quantity", "1", FieldQuantity, "1"},
		{"lot_count", "250", FieldQuantity, "250"},
		{"large_int_is_price", "1500", FieldPrice, "1500"},
		{"zero_is_price", "0", FieldPrice, "0"},
		{"negative_is_price", "-5", FieldPrice, "-5"},
		{"decimal_is_price", "3.5", FieldPrice, "3.5"},
		{"negative_spread_price", "-0.025", FieldPrice, "-0.025"},

		{"side_b", "B", FieldSide, "B"},
		{"side_bought_lower", "bought", FieldSide, "bought"},
		{"side_sold", "SOLD", FieldSide, "SOLD"},
		{"side_short", "Short", FieldSide, "Short"},

		{"exchange_ice_suffix", "ICE_L", FieldExchange, "ICE_L"},
		{"exchange_cme", "CME", FieldExchange, "CME"},
		{"exchange_star_stripped", "EUREX*", FieldExchange, "EUREX"},
		{"exchange_compound", "AB-CD", FieldExchange, "AB-CD"},

		{"structure_dfly", "SON Sep26 D-Fly", FieldStructure, "SON Sep26 D-Fly"},
		{"structure_fly_condor", "SO3 Mar26 Fly Condor", FieldStructure, "SO3 Mar26 Fly Condor"},
		{"structure_calendar", "SO3 Mar26-Jun26 Calendar", FieldStructure, "SO3 Mar26-Jun26 Calendar"},
		{"structure_tenor_pair", "ER3 Mar26-Jun26", FieldStructure, "ER3 Mar26-Jun26"},
		{"structure_outright", "SA3 Dec25", FieldStructure, "SA3 Dec25"},

		{"date_iso", "2025-06-16", FieldDate, "2025-06-16"},
		{"date_european", "16-6-25", FieldDate, "16-6-25"},
		{"date_slashes", "16/06/2025", FieldDate, "16/06/2025"},

		{"time_colons", "16:38:25", FieldTime, "16:38:25"},
		{"time_dots", "16.38.25", FieldTime, "16.38.25"},
		{"time_with_millis", "16:38:25.718", FieldTime, "16:38:25.718"},
		{"time_short", "9:05", FieldTime, "9:05"},

		{"fragment_son", "SON", FieldStructurePart, "SON"},
		{"fragment_calendar", "Calendar", FieldStructurePart, "Calendar"},
		{"fragment_dfly", "D-Fly", FieldStructurePart, "D-Fly"},

		{"garbage", "!!!", FieldUnknown, "!!!"},
		{"empty", "", FieldUnknown, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := Classify(tt.token)
			assert.Equal(t, tt.typ, f.Type, "type for %q", tt.token)
			assert.Equal(t, tt.value, f.Value)
		})
	}
}

// Structures contain digit runs that look like dates, so the structure
// patterns must win over the date patterns.
func TestClassifyStructureBeatsDate(t *testing.T) {
	t.Parallel()

	f := Classify("SON Sep26 D-Fly")
	assert.Equal(t, FieldStructure, f.Type)
}
