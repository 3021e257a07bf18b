package util

import (
	"strings"
	"time"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ValidateText reports whether a required text field carries a value.
func ValidateText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ParseDate coerces a wire date string ("2025-04-30" or RFC 3339) into a
// date value.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
