package structure

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Structure type taxonomy.
const (
	TypeFlyCondor    = "Fly Condor"
	Type3DFly        = "3 D-Fly"
	Type3Fly         = "3 Fly"
	TypeDFly         = "D-Fly"
	Type3moButterfly = "3mo Butterfly"
	Type3moCondor    = "3mo Condor"
	TypeButterfly    = "Butterfly"
	TypeCondor       = "Condor"
	TypeCalendar     = "Calendar"
	TypeOutright     = "Outright"
	TypeUnknown      = "Unknown"
)

// Metadata is derived from a normalized structure name on demand; it is never
// stored alongside the trades.
type Metadata struct {
	Instrument   string `json:"instrument"`   // SO3, SON, SA3, ER3
	Tenor        string `json:"tenor"`        // contract months joined by "-", e.g. Mar26-Jun26
	Type         string `json:"type"`
	CalendarSpan int    `json:"calendarSpan"` // 3/6/9/12 months, calendars only
}

var (
	instrumentRe = regexp.MustCompile(`^(SO3|SON|SA3|ER3)`)
	tenorRe      = regexp.MustCompile(`(Mar|Jun|Sep|Dec)(\d{2})`)
)

// typeRules are substring checks evaluated top-down; the most specific names
// come first so that e.g. "3 D-Fly" is never reported as a plain D-Fly.
var typeRules = []struct {
	keyword string
	typ     string
}{
	{TypeFlyCondor, TypeFlyCondor},
	{Type3DFly, Type3DFly},
	{Type3Fly, Type3Fly},
	{TypeDFly, TypeDFly},
	{Type3moButterfly, Type3moButterfly},
	{Type3moCondor, Type3moCondor},
	{TypeButterfly, TypeButterfly},
	{TypeCondor, TypeCondor},
}

// ParseMetadata extracts instrument, tenor and structure type from a
// normalized name.
func ParseMetadata(name string) Metadata {
	md := Metadata{Type: TypeUnknown}
	md.Instrument = instrumentRe.FindString(name)

	tenors := tenorRe.FindAllString(name, -1)
	md.Tenor = strings.Join(tenors, "-")

	for _, r := range typeRules {
		if strings.Contains(name, r.keyword) {
			md.Type = r.typ
			return md
		}
	}

	// Calendars: either the keyword or a bare tenor pair.
	if strings.Contains(name, TypeCalendar) || len(tenors) == 2 {
		md.Type = TypeCalendar
		md.CalendarSpan = calendarSpan(tenors)
		return md
	}

	// Outrights carry no structure keyword and only exist for the products
	// quoted as single contracts.
	if (strings.HasPrefix(name, "SA3") || strings.HasPrefix(name, "ER3")) && len(tenors) <= 1 {
		md.Type = TypeOutright
	}
	return md
}

var monthIndex = map[string]int{"Mar": 3, "Jun": 6, "Sep": 9, "Dec": 12}

// calendarSpan buckets the distance between the two legs of a calendar into
// 3/6/9/12 months, rounding up to the nearest bucket.
func calendarSpan(tenors []string) int {
	if len(tenors) != 2 {
		return 0
	}
	a, okA := tenorMonths(tenors[0])
	b, okB := tenorMonths(tenors[1])
	if !okA || !okB {
		return 0
	}
	d := b - a
	if d < 0 {
		d = -d
	}
	switch {
	case d <= 3:
		return 3
	case d <= 6:
		return 6
	case d <= 9:
		return 9
	default:
		return 12
	}
}

func tenorMonths(tenor string) (int, bool) {
	m := tenorRe.FindStringSubmatch(tenor)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return year*12 + monthIndex[m[1]], true
}

// DisplayType renders the type with the calendar span when there is one.
func (m Metadata) DisplayType() string {
	if m.Type == TypeCalendar && m.CalendarSpan > 0 {
		return fmt.Sprintf("%dmo Calendar", m.CalendarSpan)
	}
	return m.Type
}
