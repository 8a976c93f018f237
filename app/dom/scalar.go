package dom

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Conversions in this file return nil for blank or malformed input.

var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

func ParseInt(value string) *int {
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &i
}

func ParseInt64(value string) *int64 {
	i, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return nil
	}
	return &i
}

// ParseBool accepts true/yes and false/no, case-insensitively.
func ParseBool(value string) *bool {
	var b bool
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes":
		b = true
	case "false", "no":
		b = false
	default:
		return nil
	}
	return &b
}

// ParseExplicit is ParseBool plus the iTunes spellings "explicit" and "clean".
func ParseExplicit(value string) *bool {
	var b bool
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "explicit":
		b = true
	case "clean":
		b = false
	default:
		return ParseBool(value)
	}
	return &b
}

// ParseDate tries the RSS date layouts first and falls back to dateparse for everything else.
func ParseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return nil
	}
	return &t
}

// ParseSeconds reads a decimal number of seconds such as "73.5".
func ParseSeconds(value string) *time.Duration {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	d := time.Duration(f * float64(time.Second))
	return &d
}
