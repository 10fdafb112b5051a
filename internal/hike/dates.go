package hike

import "time"

// Canonical storage layouts. Both are zero-padded and big-endian so string
// comparison orders them chronologically.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "2006-01-02 15:04:05"
)

const (
	dateDisplayLayout = "January 02, 2006"
	timeDisplayLayout = "Jan 02, 2006 03:04 PM"
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

// Today returns the current local date in DateLayout.
func Today() string {
	return nowFunc().Format(DateLayout)
}

// Now returns the current local time in TimeLayout.
func Now() string {
	return nowFunc().Format(TimeLayout)
}

// IsCanonicalDate reports whether value is a real calendar date in DateLayout.
func IsCanonicalDate(value string) bool {
	t, err := time.Parse(DateLayout, value)
	return err == nil && t.Format(DateLayout) == value
}

// IsCanonicalTime reports whether value is a real timestamp in TimeLayout.
func IsCanonicalTime(value string) bool {
	t, err := time.Parse(TimeLayout, value)
	return err == nil && t.Format(TimeLayout) == value
}

// FormatDate renders a stored date for people. Values that do not parse are
// returned unchanged.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return value
	}
	return t.Format(dateDisplayLayout)
}

// FormatDateTime renders a stored timestamp for people. Values that do not
// parse are returned unchanged.
func FormatDateTime(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return value
	}
	return t.Format(timeDisplayLayout)
}
