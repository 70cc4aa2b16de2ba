package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	bareHourRe   = regexp.MustCompile(`^\d{1,2}$`)
	hourSuffixRe = regexp.MustCompile(`^(\d{1,2})h$`)
)

// NormalizeClockTime coerces ad-hoc time tokens emitted by the model into an
// H:MM / HH:MM 24-hour string: "9" and "9h" become "9:00", "930" becomes
// "9:30", "1405" becomes "14:05". Tokens already carrying a valid colon form
// pass through unchanged. On failure the original token is returned together
// with a TimeFormatError; callers may keep the literal and continue, which is
// the intended lenient behavior rather than an oversight.
func NormalizeClockTime(token string) (string, error) {
	s := strings.TrimSpace(token)
	s = strings.Trim(s, `"'`)

	if m := hourSuffixRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	if bareHourRe.MatchString(s) {
		s += ":00"
	}
	if !strings.Contains(s, ":") {
		switch len(s) {
		case 3:
			s = s[:1] + ":" + s[1:]
		case 4:
			s = s[:2] + ":" + s[2:]
		}
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return token, &TimeFormatError{Token: token}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return token, &TimeFormatError{Token: token}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minute < 0 || minute > 59 {
		return token, &TimeFormatError{Token: token}
	}

	return s, nil
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// DaysBetween returns the inclusive day count of a trip, so a trip starting
// and ending on the same date lasts one day. Returns 0 when end precedes start.
func DaysBetween(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 0
	}
	return days
}
