// Package timeutil provides wall-clock arithmetic over "HH:MM" local
// day strings. All functions are pure; day wrap in either direction
// always normalizes into the 0-1439 minute range.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

const minutesPerDay = 24 * 60

// ToMinutes parses a 24-hour "HH:MM" string into minutes since
// midnight. A single-digit hour is accepted ("8:05"); anything else
// that deviates from the format fails with ErrInvalidTimeFormat.
func ToMinutes(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimeFormat, s)
	}

	hour, ok := parseComponent(hh, 1, 2, 23)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimeFormat, s)
	}
	minute, ok := parseComponent(mm, 2, 2, 59)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimeFormat, s)
	}

	return hour*60 + minute, nil
}

func parseComponent(s string, minLen, maxLen, max int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	v := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	if v > max {
		return 0, false
	}
	return v, true
}

// FromMinutes formats minutes since midnight as "HH:MM", normalizing
// modulo 1440 so negative and >24h values wrap across midnight.
func FromMinutes(m int) string {
	m %= minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddOffset shifts a base "HH:MM" time by delta minutes, wrapping
// through midnight in either direction.
func AddOffset(base string, delta int) (string, error) {
	m, err := ToMinutes(base)
	if err != nil {
		return "", err
	}
	return FromMinutes(m + delta), nil
}

// Compare orders two "HH:MM" times within one day: -1 if a < b, 1 if
// a > b, 0 if equal.
func Compare(a, b string) (int, error) {
	am, err := ToMinutes(a)
	if err != nil {
		return 0, err
	}
	bm, err := ToMinutes(b)
	if err != nil {
		return 0, err
	}
	switch {
	case am < bm:
		return -1, nil
	case am > bm:
		return 1, nil
	default:
		return 0, nil
	}
}

// MinutesUntil reports the minutes from now's wall clock to target on
// the same day. Negative when the target has already passed.
func MinutesUntil(target string, now time.Time) (int, error) {
	tm, err := ToMinutes(target)
	if err != nil {
		return 0, err
	}
	return tm - (now.Hour()*60 + now.Minute()), nil
}

// At anchors an "HH:MM" string to the calendar day of ref in the given
// location, producing an absolute instant with second precision. A nil
// location means UTC.
func At(ref time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	m, err := ToMinutes(hhmm)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	ref = ref.In(loc)
	return time.Date(ref.Year(), ref.Month(), ref.Day(), m/60, m%60, 0, 0, loc), nil
}
