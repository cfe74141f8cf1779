package medicinestore

import (
	"testing"
	"time"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

func TestUpdateOmitsFireHistory(t *testing.T) {
	// Only MarkFired may write last_fired_at; a structural update must
	// leave it untouched even though it selects all other columns.
	for _, want := range []string{"id", "user_id", "created_at", "last_fired_at"} {
		found := false
		for _, col := range updateOmittedColumns {
			if col == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("column %q missing from updateOmittedColumns", want)
		}
	}
}

func TestRecordMapping_KindSelectsFields(t *testing.T) {
	next := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	specific := &domain.MedicineReminder{
		ID:      "rem-1",
		UserID:  "user-1",
		Kind:    domain.KindSpecificTime,
		Enabled: true,
		Specific: &domain.SpecificTime{
			Time:         "08:00",
			Frequency:    domain.FrequencyTwice,
			OffsetBefore: 15,
			OffsetAfter1: 15,
			OffsetAfter2: 30,
		},
		NextFireAt: &next,
	}

	got := toDomain(fromDomain(specific))
	if got.Specific == nil {
		t.Fatal("specific-time reminder lost its Specific fields")
	}
	if got.Interval != nil {
		t.Error("specific-time reminder gained Interval fields")
	}
	if got.Specific.Time != "08:00" || got.Specific.Frequency != domain.FrequencyTwice {
		t.Errorf("Specific = %+v, want time 08:00 frequency 2", got.Specific)
	}
	if got.NextFireAt == nil || !got.NextFireAt.Equal(next) {
		t.Errorf("NextFireAt = %v, want %v", got.NextFireAt, next)
	}

	interval := &domain.MedicineReminder{
		ID:     "rem-2",
		UserID: "user-1",
		Kind:   domain.KindEveryXHours,
		Interval: &domain.Interval{
			Hours:     8,
			StartTime: "00:01",
			EndTime:   "23:59",
		},
	}

	got = toDomain(fromDomain(interval))
	if got.Interval == nil {
		t.Fatal("interval reminder lost its Interval fields")
	}
	if got.Specific != nil {
		t.Error("interval reminder gained Specific fields")
	}
	if got.Interval.Hours != 8 {
		t.Errorf("Interval.Hours = %d, want 8", got.Interval.Hours)
	}
}
