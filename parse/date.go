package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var (
	weekdayPrefixRe = regexp.MustCompile(`(?i)^[A-Za-z]{3,9},\s*`)
	monthNameDateRe = regexp.MustCompile(`(?i)^(\d{1,2})\s+([A-Za-z]{3,9}),?\s+(\d{4})$`)
	isoDateRe       = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	euroDateRe      = regexp.MustCompile(`^(\d{1,2})[-/.](\d{1,2})[-/.](\d{2,4})$`)

	// "16:38:25.718" -> "16:38:25"; execution platforms append millis.
	subSecondRe = regexp.MustCompile(`(\d{1,2}[:.\x{00B7}]\d{2}[:.\x{00B7}]\d{2})\.\d+$`)
	timeSepRe   = regexp.MustCompile(`[:.\x{00B7}]`)
)

// fallbackLayouts is the last-resort strategy when none of the explicit date
// shapes match.
var fallbackLayouts = []string{
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"02 Jan 2006",
	"2006-01-02T15:04:05",
}

// ParseDate resolves a date token. Strategies run in priority order and the
// first hit wins; the European day-first form dominates real-world input, so
// it is tried before any generic (US-leaning) fallback.
func ParseDate(s string) (time.Time, bool) {
	tok := strings.TrimSpace(s)
	if tok == "" {
		return time.Time{}, false
	}

	if t, ok := parseMonthNameDate(tok); ok {
		return t, true
	}

	if m := isoDateRe.FindStringSubmatch(tok); m != nil {
		return makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}

	if m := euroDateRe.FindStringSubmatch(tok); m != nil {
		day, month, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
		if year < 100 {
			year += 2000
		}
		return makeDate(year, month, day)
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, tok, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseMonthNameDate handles "16 June 2025", "16 Jun, 2025" and the same with
// a leading weekday ("Mon, 16 June 2025"). The month is matched by
// case-insensitive prefix against the full month names.
func parseMonthNameDate(tok string) (time.Time, bool) {
	tok = weekdayPrefixRe.ReplaceAllString(tok, "")
	m := monthNameDateRe.FindStringSubmatch(tok)
	if m == nil {
		return time.Time{}, false
	}

	month := 0
	for i, name := range months {
		if strings.HasPrefix(strings.ToLower(name), strings.ToLower(m[2])) {
			month = i + 1
			break
		}
	}
	if month == 0 {
		return time.Time{}, false
	}
	return makeDate(atoi(m[3]), month, atoi(m[1]))
}

func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

// ApplyTime sets the time-of-day from a time token onto a date. A missing or
// malformed token leaves the date at midnight. Sub-second fragments after a
// two-digit seconds group are dropped and dot / colon / middle-dot separators
// are treated alike.
func ApplyTime(date time.Time, tok string) time.Time {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return date
	}

	tok = subSecondRe.ReplaceAllString(tok, "$1")
	parts := timeSepRe.Split(tok, -1)
	if len(parts) < 2 {
		return date
	}

	nums := make([]int, 0, 3)
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return date
		}
		nums = append(nums, n)
	}

	hour, min, sec := nums[0], nums[1], 0
	if len(nums) > 2 {
		sec = nums[2]
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, min, sec, 0, date.Location())
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
