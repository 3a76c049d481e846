package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDuration converts a "MM:SS" string into decimal minutes
// (MM + SS/60). Callers decide whether a parse error is coerced to
// zero or surfaced as a validation failure.
func ParseDuration(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, NewErrorf("duration %q is not in MM:SS format", s)
	}
	mins, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, NewErrorf("duration %q has invalid minutes: %v", s, err)
	}
	secs, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, NewErrorf("duration %q has invalid seconds: %v", s, err)
	}
	return float64(mins) + float64(secs)/60, nil
}

// FormatMinutes renders decimal minutes back as "MM:SS" for templates.
func FormatMinutes(minutes float64) string {
	mins := int(minutes)
	secs := int(math.Round((minutes - float64(mins)) * 60))
	if secs == 60 {
		mins++
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// FormatDistance renders a distance in meters, dropping a trailing ".0".
func FormatDistance(meters float64) string {
	return strconv.FormatFloat(meters, 'f', -1, 64)
}
