package medicine

import (
	"errors"
	"testing"
	"time"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

func specificReminder(baseTime string, frequency int) *domain.MedicineReminder {
	return &domain.MedicineReminder{
		ID:      "med-1",
		UserID:  "user-1",
		Name:    "Aspirin",
		Kind:    domain.KindSpecificTime,
		Enabled: true,
		Specific: &domain.SpecificTime{
			Time:         baseTime,
			Frequency:    frequency,
			OffsetBefore: domain.DefaultOffsetBefore,
			OffsetAfter1: domain.DefaultOffsetAfter1,
			OffsetAfter2: domain.DefaultOffsetAfter2,
		},
	}
}

func intervalReminder(hours int, start, end string) *domain.MedicineReminder {
	return &domain.MedicineReminder{
		ID:      "med-2",
		UserID:  "user-1",
		Name:    "Antibiotic",
		Kind:    domain.KindEveryXHours,
		Enabled: true,
		Interval: &domain.Interval{
			Hours:     hours,
			StartTime: start,
			EndTime:   end,
		},
	}
}

func TestReminderTimes(t *testing.T) {
	tests := []struct {
		name      string
		frequency int
		want      []string
	}{
		{name: "once is just the base", frequency: 1, want: []string{"08:00"}},
		{name: "twice adds before offset", frequency: 2, want: []string{"07:45", "08:00"}},
		{name: "thrice adds after1", frequency: 3, want: []string{"07:45", "08:00", "08:15"}},
		{name: "four adds after2", frequency: 4, want: []string{"07:45", "08:00", "08:15", "08:30"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReminderTimes(specificReminder("08:00", tt.frequency))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d times, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("times[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNextFireTimeSpecific(t *testing.T) {
	day := func(hh, mm int) time.Time {
		return time.Date(2026, 8, 31, hh, mm, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{name: "before all times picks earliest today", now: day(6, 0), want: day(7, 45)},
		{name: "between times picks next", now: day(8, 5), want: day(8, 15)},
		{name: "exactly on a time fires now", now: day(8, 15), want: day(8, 15)},
		{name: "after all times rolls to tomorrow", now: day(9, 0), want: day(7, 45).AddDate(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextFireTime(specificReminder("08:00", 4), tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextFireTime() = %v, want %v", got, tt.want)
			}
			if got.Before(tt.now) {
				t.Errorf("NextFireTime() = %v is before now %v", got, tt.now)
			}
		})
	}
}

func TestNextFireTimeInterval(t *testing.T) {
	day := func(hh, mm int) time.Time {
		return time.Date(2026, 8, 31, hh, mm, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{name: "before start uses today's start", now: day(0, 0), want: day(0, 1)},
		{name: "inside window rounds up to next grid point", now: day(8, 30), want: day(12, 1)},
		{name: "past last grid point rolls to tomorrow start", now: day(23, 58), want: day(0, 1).AddDate(0, 0, 1)},
		{name: "exactly on grid point fires now", now: day(6, 1), want: day(6, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextFireTime(intervalReminder(6, "00:01", "23:59"), tt.now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextFireTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextFireTimeInvalidSpecs(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		reminder *domain.MedicineReminder
		wantErr  error
	}{
		{
			name:     "unknown kind",
			reminder: &domain.MedicineReminder{Kind: "weekly"},
			wantErr:  domain.ErrInvalidSpec,
		},
		{
			name:     "specific time without sub-fields",
			reminder: &domain.MedicineReminder{Kind: domain.KindSpecificTime},
			wantErr:  domain.ErrInvalidSpec,
		},
		{
			name:     "interval without sub-fields",
			reminder: &domain.MedicineReminder{Kind: domain.KindEveryXHours},
			wantErr:  domain.ErrInvalidSpec,
		},
		{
			name:     "interval hours outside allowed set",
			reminder: intervalReminder(5, "00:01", "23:59"),
			wantErr:  domain.ErrInvalidInterval,
		},
		{
			name:     "frequency outside allowed set",
			reminder: specificReminder("08:00", 5),
			wantErr:  domain.ErrInvalidSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NextFireTime(tt.reminder, now)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NextFireTime() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
