package eventindex

import (
	"context"
	"testing"
	"time"

	"github.com/4imn/Sadeqi-backend/internal/domain"
	"github.com/4imn/Sadeqi-backend/internal/testutil"
)

func TestRedisUpsertAndRange(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	idx := NewRedis(client, "")
	base := time.Date(2026, 8, 31, 5, 12, 0, 0, time.UTC)

	tests := []struct {
		name   string
		events []domain.Event
		from   time.Time
		to     time.Time
		want   []string // expected members in order
	}{
		{
			name: "inclusive bounds ascending order",
			events: []domain.Event{
				{Scope: "SAU", Day: "2026-08-31", Label: "fajr", Time: base},
				{Scope: "JOR", Day: "2026-08-31", Label: "fajr", Time: base.Add(30 * time.Second)},
				{Scope: "ARE", Day: "2026-08-31", Label: "fajr", Time: base.Add(time.Hour)},
			},
			from: base,
			to:   base.Add(time.Minute),
			want: []string{"SAU:2026-08-31:fajr", "JOR:2026-08-31:fajr"},
		},
		{
			name: "upsert same key replaces score",
			events: []domain.Event{
				{Scope: "KWT", Day: "2026-08-31", Label: "dhuhr", Time: base},
				{Scope: "KWT", Day: "2026-08-31", Label: "dhuhr", Time: base.Add(2 * time.Hour)},
			},
			from: base.Add(2 * time.Hour),
			to:   base.Add(2 * time.Hour),
			want: []string{"KWT:2026-08-31:dhuhr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := client.Del(ctx, DefaultPrayerKey).Err(); err != nil {
				t.Fatalf("failed to reset sorted set: %v", err)
			}

			for _, e := range tt.events {
				if err := idx.Upsert(ctx, e); err != nil {
					t.Fatalf("Upsert failed: %v", err)
				}
			}

			got, err := idx.Range(ctx, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Range failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d events, got %d", len(tt.want), len(got))
			}
			for i, e := range got {
				if e.Key().Member() != tt.want[i] {
					t.Errorf("event %d = %s, want %s", i, e.Key().Member(), tt.want[i])
				}
			}
		})
	}
}

func TestRedisRemoveReportsWinner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	idx := NewRedis(client, "")
	ts := time.Date(2026, 8, 31, 5, 12, 0, 0, time.UTC)
	e := domain.Event{Scope: "SAU", Day: "2026-08-31", Label: "fajr", Time: ts}

	if err := idx.Upsert(ctx, e); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	removed, err := idx.Remove(ctx, e.Key())
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !removed {
		t.Error("first Remove should win")
	}

	removed, err = idx.Remove(ctx, e.Key())
	if err != nil {
		t.Fatalf("second Remove failed: %v", err)
	}
	if removed {
		t.Error("second Remove must not win")
	}

	got, err := idx.Range(ctx, ts, ts)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("removed key still visible in Range: %d entries", len(got))
	}
}

func TestRedisEvictBefore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	idx := NewRedis(client, "")
	cutoff := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	events := []domain.Event{
		{Scope: "SAU", Day: "2026-08-31", Label: "fajr", Time: cutoff.Add(-time.Hour)},
		{Scope: "SAU", Day: "2026-08-31", Label: "sunrise", Time: cutoff.Add(-time.Second)},
		{Scope: "SAU", Day: "2026-08-31", Label: "dhuhr", Time: cutoff},
		{Scope: "SAU", Day: "2026-08-31", Label: "asr", Time: cutoff.Add(3 * time.Hour)},
	}
	for _, e := range events {
		if err := idx.Upsert(ctx, e); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	evicted, err := idx.EvictBefore(ctx, cutoff)
	if err != nil {
		t.Fatalf("EvictBefore failed: %v", err)
	}
	if evicted != 2 {
		t.Errorf("expected 2 evicted entries, got %d", evicted)
	}

	remaining, err := idx.Range(ctx, cutoff.Add(-24*time.Hour), cutoff.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("expected entry at cutoff and later to remain, got %d", len(remaining))
	}
	if remaining[0].Label != "dhuhr" || remaining[1].Label != "asr" {
		t.Errorf("unexpected survivors: %s, %s", remaining[0].Label, remaining[1].Label)
	}
}
