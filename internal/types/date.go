package types

import (
	"fmt"
	"time"
)

// DateLayout renders dates the way the public API exposes them: UTC with
// millisecond precision.
const DateLayout = "2006-01-02T15:04:05.000Z"

var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate accepts ISO-8601 timestamps with or without a zone offset;
// zoneless values are taken as UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("date is not in ISO 8601 format: %s", s)
}
