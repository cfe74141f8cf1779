package timeutil

import (
	"errors"
	"testing"
	"time"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "midnight", in: "00:00", want: 0},
		{name: "last minute of day", in: "23:59", want: 1439},
		{name: "midday", in: "12:30", want: 750},
		{name: "single digit hour", in: "8:05", want: 485},
		{name: "hour out of range", in: "24:00", wantErr: true},
		{name: "minute out of range", in: "12:60", wantErr: true},
		{name: "missing separator", in: "1230", wantErr: true},
		{name: "single digit minute", in: "12:3", wantErr: true},
		{name: "non numeric", in: "ab:cd", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "negative hour", in: "-1:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinutes(tt.in)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidTimeFormat) {
					t.Fatalf("ToMinutes(%q) error = %v, want ErrInvalidTimeFormat", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToMinutes(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromMinutes(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{1439, "23:59"},
		{1440, "00:00"},
		{1450, "00:10"},
		{-10, "23:50"},
		{-1440, "00:00"},
		{750, "12:30"},
	}

	for _, tt := range tests {
		if got := FromMinutes(tt.in); got != tt.want {
			t.Errorf("FromMinutes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 1, 15, 30, 59} {
			s := FromMinutes(h*60 + m)
			got, err := ToMinutes(s)
			if err != nil {
				t.Fatalf("ToMinutes(%q) unexpected error: %v", s, err)
			}
			if FromMinutes(got) != s {
				t.Errorf("round trip of %q gave %q", s, FromMinutes(got))
			}
		}
	}
}

func TestAddOffset(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		delta int
		want  string
	}{
		{name: "backward wrap across midnight", base: "00:10", delta: -20, want: "23:50"},
		{name: "forward wrap across midnight", base: "23:50", delta: 20, want: "00:10"},
		{name: "plain addition", base: "08:00", delta: 15, want: "08:15"},
		{name: "plain subtraction", base: "08:00", delta: -15, want: "07:45"},
		{name: "zero offset", base: "12:00", delta: 0, want: "12:00"},
		{name: "full day wraps to same time", base: "06:30", delta: 1440, want: "06:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddOffset(tt.base, tt.delta)
			if err != nil {
				t.Fatalf("AddOffset(%q, %d) unexpected error: %v", tt.base, tt.delta, err)
			}
			if got != tt.want {
				t.Errorf("AddOffset(%q, %d) = %q, want %q", tt.base, tt.delta, got, tt.want)
			}
		})
	}

	if _, err := AddOffset("25:00", 5); !errors.Is(err, domain.ErrInvalidTimeFormat) {
		t.Errorf("AddOffset with invalid base error = %v, want ErrInvalidTimeFormat", err)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"08:00", "09:00", -1},
		{"09:00", "08:00", 1},
		{"08:00", "08:00", 0},
	}

	for _, tt := range tests {
		got, err := Compare(tt.a, tt.b)
		if err != nil {
			t.Fatalf("Compare(%q, %q) unexpected error: %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMinutesUntil(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 30, 0, 0, time.UTC)

	got, err := MinutesUntil("09:00", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 30 {
		t.Errorf("MinutesUntil(09:00) = %d, want 30", got)
	}

	got, err = MinutesUntil("08:00", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -30 {
		t.Errorf("MinutesUntil(08:00) = %d, want -30", got)
	}
}

func TestAt(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Riyadh")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	ref := time.Date(2026, 8, 31, 22, 0, 0, 0, time.UTC)
	got, err := At(ref, "05:12", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 22:00 UTC on Aug 31 is already Sep 1 in Riyadh (UTC+3); the
	// instant must be anchored to the scope-local calendar day.
	want := time.Date(2026, 9, 1, 5, 12, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("At() = %v, want %v", got, want)
	}
}

func TestAt_NilLocation(t *testing.T) {
	ref := time.Date(2026, 8, 31, 22, 0, 0, 0, time.UTC)

	got, err := At(ref, "05:12", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2026, 8, 31, 5, 12, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() = %v, want UTC anchoring %v", got, want)
	}
}
