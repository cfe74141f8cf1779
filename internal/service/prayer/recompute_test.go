package prayer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/4imn/Sadeqi-backend/internal/domain"
	"github.com/4imn/Sadeqi-backend/internal/infra/eventindex"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%s): %v", name, err)
	}
	return loc
}

func TestRecomputer_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	scopes := domain.NewMockScopeProvider(ctrl)
	calc := domain.NewMockDailyTimeCalculator(ctrl)
	index := eventindex.NewMemory()

	riyadh := mustLocation(t, "Asia/Riyadh")
	sau := domain.Scope{Code: "SAU", Name: "Saudi Arabia", Location: riyadh}
	egy := domain.Scope{Code: "EGY", Name: "Egypt", Location: mustLocation(t, "Africa/Cairo")}

	now := time.Date(2025, 6, 15, 0, 2, 0, 0, riyadh)

	scopes.EXPECT().ListScopes(gomock.Any()).Return([]domain.Scope{sau, egy}, nil)
	calc.EXPECT().
		ComputeDailyTimes(gomock.Any(), sau, gomock.Any()).
		Return(map[string]string{"fajr": "04:05", "dhuhr": "12:01"}, nil)
	calc.EXPECT().
		ComputeDailyTimes(gomock.Any(), egy, gomock.Any()).
		Return(map[string]string{"fajr": "04:20"}, nil)

	rec := NewRecomputer(scopes, calc, index, discardLogger(), nil).
		WithClock(func() time.Time { return now })

	result, err := rec.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Succeeded != 2 || len(result.Failures) != 0 {
		t.Fatalf("Run() = %+v, want 2 succeeded", result)
	}

	// The SAU fajr entry is anchored to 04:05 Riyadh time.
	from := time.Date(2025, 6, 15, 4, 5, 0, 0, riyadh)
	events, err := index.Range(context.Background(), from, from)
	if err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	if len(events) != 1 || events[0].Key().Member() != "SAU:2025-06-15:fajr" {
		t.Errorf("Range() = %v, want the SAU fajr entry", events)
	}
}

func TestRecomputer_Run_ScopeFailureIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	scopes := domain.NewMockScopeProvider(ctrl)
	calc := domain.NewMockDailyTimeCalculator(ctrl)
	index := eventindex.NewMemory()

	sau := domain.Scope{Code: "SAU", Location: time.UTC}
	bad := domain.Scope{Code: "XXX", Location: time.UTC}

	scopes.EXPECT().ListScopes(gomock.Any()).Return([]domain.Scope{bad, sau}, nil)
	calc.EXPECT().
		ComputeDailyTimes(gomock.Any(), bad, gomock.Any()).
		Return(nil, domain.ErrScopeNotFound)
	calc.EXPECT().
		ComputeDailyTimes(gomock.Any(), sau, gomock.Any()).
		Return(map[string]string{"fajr": "04:05"}, nil)

	rec := NewRecomputer(scopes, calc, index, discardLogger(), nil)

	result, err := rec.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Succeeded != 1 {
		t.Errorf("Succeeded = %d, want 1", result.Succeeded)
	}
	if len(result.Failures) != 1 || result.Failures[0].Scope != "XXX" {
		t.Errorf("Failures = %v, want one for XXX", result.Failures)
	}
	if !errors.Is(result.Failures[0].Err, domain.ErrScopeNotFound) {
		t.Errorf("failure error = %v, want ErrScopeNotFound", result.Failures[0].Err)
	}
}

func TestRecomputer_Run_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	scopes := domain.NewMockScopeProvider(ctrl)
	calc := domain.NewMockDailyTimeCalculator(ctrl)
	index := eventindex.NewMemory()

	sau := domain.Scope{Code: "SAU", Location: time.UTC}
	now := time.Date(2025, 6, 15, 0, 2, 0, 0, time.UTC)
	times := map[string]string{"fajr": "04:05", "dhuhr": "12:01"}

	scopes.EXPECT().ListScopes(gomock.Any()).Return([]domain.Scope{sau}, nil).Times(2)
	calc.EXPECT().
		ComputeDailyTimes(gomock.Any(), sau, gomock.Any()).
		Return(times, nil).
		Times(2)

	rec := NewRecomputer(scopes, calc, index, discardLogger(), nil).
		WithClock(func() time.Time { return now })

	for i := 0; i < 2; i++ {
		if _, err := rec.Run(context.Background()); err != nil {
			t.Fatalf("Run() #%d error = %v", i+1, err)
		}
	}

	events, err := index.Range(context.Background(), now, now.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	if len(events) != 2 {
		t.Errorf("index holds %d entries after rerun, want 2", len(events))
	}
}

func TestRecomputer_Run_ListScopesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	scopes := domain.NewMockScopeProvider(ctrl)
	calc := domain.NewMockDailyTimeCalculator(ctrl)

	scopes.EXPECT().ListScopes(gomock.Any()).Return(nil, errors.New("db down"))

	rec := NewRecomputer(scopes, calc, eventindex.NewMemory(), discardLogger(), nil)

	if _, err := rec.Run(context.Background()); err == nil {
		t.Fatal("Run() expected error when scope listing fails")
	}
}
