package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/healthlit/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in local time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// NowTime returns the current local time of day (HH:MM:SS).
func NowTime() string {
	return time.Now().Format(constants.TimeFormat)
}

// NormalizeDate accepts "today", "yesterday" or a YYYY-MM-DD date and returns
// the ISO form.
func NormalizeDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(value) {
	case "", "today":
		return Today(), nil
	case "yesterday":
		return time.Now().AddDate(0, 0, -1).Format(constants.DateFormat), nil
	}
	d, err := time.Parse(constants.DateFormat, value)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return d.Format(constants.DateFormat), nil
}

// NormalizeTime accepts HH:MM or HH:MM:SS and returns HH:MM:SS. An empty value
// means now.
func NormalizeTime(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "now") {
		return NowTime(), nil
	}
	for _, layout := range []string{constants.TimeFormat, constants.ShortTimeFormat} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(constants.TimeFormat), nil
		}
	}
	return "", fmt.Errorf("invalid time %q: expected HH:MM or HH:MM:SS", value)
}
