package services

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// parseDate accepts YYYY-MM-DD or RFC 3339 and keeps only the calendar day.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

func formatDate(d datatypes.Date) string {
	t := time.Time(d)
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func dayOf(d datatypes.Date) time.Time {
	y, m, day := time.Time(d).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
