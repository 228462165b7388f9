package app

import (
	"strconv"
	"strings"
	"time"
)

// DisplayDateLayout renders dates at day level, e.g. "Mon Jan 01 2024".
const DisplayDateLayout = "Mon Jan 02 2006"

// parseLeadingInt reads an optionally signed run of leading digits and
// ignores the remainder, so "45" and "45min" both give 45 and "4.5" gives 4.
func parseLeadingInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

var dayLayouts = []string{time.DateOnly, DisplayDateLayout}

var instantLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04"}

// parseDate accepts a calendar day or a full timestamp. Values without a zone
// are read as UTC. dayOnly reports whether the input named a whole day.
func parseDate(raw string) (t time.Time, dayOnly bool, ok bool) {
	s := strings.TrimSpace(raw)
	for _, layout := range dayLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return parsed, true, true
		}
	}
	for _, layout := range instantLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return parsed.UTC(), false, true
		}
	}
	return time.Time{}, false, false
}

func formatDate(t time.Time) string {
	return t.UTC().Format(DisplayDateLayout)
}
