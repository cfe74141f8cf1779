package medicine

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/4imn/Sadeqi-backend/internal/domain"
	"github.com/4imn/Sadeqi-backend/internal/timeutil"
)

// ReminderTimes expands a specific-time spec into its sorted local
// times: the base, plus the before/after offsets the frequency
// unlocks. Frequency 1 is just the base; 2 adds the "before" offset,
// 3 adds "after1", 4 adds "after2".
func ReminderTimes(reminder *domain.MedicineReminder) ([]string, error) {
	if reminder.Kind != domain.KindSpecificTime || reminder.Specific == nil {
		return nil, domain.ErrInvalidSpec
	}
	st := reminder.Specific

	if _, err := timeutil.ToMinutes(st.Time); err != nil {
		return nil, err
	}

	times := []string{st.Time}
	if st.Frequency >= domain.FrequencyTwice {
		before, err := timeutil.AddOffset(st.Time, -st.OffsetBefore)
		if err != nil {
			return nil, err
		}
		times = append(times, before)
	}
	if st.Frequency >= domain.FrequencyThrice {
		after1, err := timeutil.AddOffset(st.Time, st.OffsetAfter1)
		if err != nil {
			return nil, err
		}
		times = append(times, after1)
	}
	if st.Frequency >= domain.FrequencyFour {
		after2, err := timeutil.AddOffset(st.Time, st.OffsetAfter2)
		if err != nil {
			return nil, err
		}
		times = append(times, after2)
	}

	// Canonical HH:MM sorts lexicographically in chronological order.
	sort.Strings(times)
	return times, nil
}

// NextFireTime maps a reminder spec to the single next absolute
// instant it should fire, strictly computed from now. It has no side
// effects; persisting the result is the caller's concern.
func NextFireTime(reminder *domain.MedicineReminder, now time.Time) (time.Time, error) {
	if err := reminder.Validate(); err != nil {
		return time.Time{}, err
	}

	switch reminder.Kind {
	case domain.KindSpecificTime:
		return nextSpecificTime(reminder, now)
	case domain.KindEveryXHours:
		return nextIntervalTime(reminder, now)
	default:
		return time.Time{}, domain.ErrInvalidSpec
	}
}

func nextSpecificTime(reminder *domain.MedicineReminder, now time.Time) (time.Time, error) {
	times, err := ReminderTimes(reminder)
	if err != nil {
		return time.Time{}, err
	}

	loc := now.Location()
	for _, hhmm := range times {
		candidate, err := timeutil.At(now, hhmm, loc)
		if err != nil {
			return time.Time{}, err
		}
		if !candidate.Before(now) {
			return candidate, nil
		}
	}

	// All of today's times have passed; earliest time tomorrow.
	tomorrow, err := timeutil.At(now.AddDate(0, 0, 1), times[0], loc)
	if err != nil {
		return time.Time{}, err
	}
	return tomorrow, nil
}

func nextIntervalTime(reminder *domain.MedicineReminder, now time.Time) (time.Time, error) {
	iv := reminder.Interval
	loc := now.Location()

	start, err := timeutil.At(now, iv.StartTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidSpec, err)
	}
	end, err := timeutil.At(now, iv.EndTime, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidSpec, err)
	}

	if now.Before(start) {
		return start, nil
	}

	// Ceiling on elapsed fractional hours so a grid point due exactly
	// now is not skipped.
	elapsed := now.Sub(start).Hours()
	steps := int(math.Ceil(elapsed / float64(iv.Hours)))
	next := start.Add(time.Duration(steps*iv.Hours) * time.Hour)

	// Past the daily window: roll to tomorrow's start.
	if !next.Before(end) {
		return start.AddDate(0, 0, 1), nil
	}
	return next, nil
}
