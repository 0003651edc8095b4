// Package uidate converts between the fixed display format used by budget
// forms (day/month/year hour:minute) and time.Time values. Timestamps are
// wall-clock values in UTC; no zone conversion is performed.
package uidate

import "time"

const layout = "02/01/2006 15:04"

// Parse parses a display-format date string. The second return value is false
// on malformed input so callers can attach a field-level validation error
// instead of handling a panic or error.
func Parse(input string) (time.Time, bool) {
	t, err := time.ParseInLocation(layout, input, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Format renders a timestamp in the display format. It is the inverse of Parse.
func Format(t time.Time) string {
	return t.UTC().Format(layout)
}
