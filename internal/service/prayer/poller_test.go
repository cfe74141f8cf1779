package prayer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/4imn/Sadeqi-backend/internal/domain"
	"github.com/4imn/Sadeqi-backend/internal/infra/eventindex"
)

type stubDispatcher struct {
	mu      sync.Mutex
	fired   []string
	err     error
	blockOn chan struct{}
	entered chan struct{}
}

func (d *stubDispatcher) DispatchPrayer(_ context.Context, fired domain.FiredEvent) (*domain.PushReport, error) {
	if d.entered != nil {
		d.entered <- struct{}{}
	}
	if d.blockOn != nil {
		<-d.blockOn
	}
	d.mu.Lock()
	d.fired = append(d.fired, fired.Key().Member())
	d.mu.Unlock()
	if d.err != nil {
		return nil, d.err
	}
	return &domain.PushReport{SuccessCount: 1}, nil
}

func seedIndex(t *testing.T, index domain.EventIndex, events ...domain.Event) {
	t.Helper()
	for _, e := range events {
		if err := index.Upsert(context.Background(), e); err != nil {
			t.Fatalf("Upsert(%s): %v", e.Key().Member(), err)
		}
	}
}

func TestPoller_Poll_FiresWindowOnce(t *testing.T) {
	index := eventindex.NewMemory()
	now := time.Date(2025, 6, 15, 12, 1, 0, 0, time.UTC)

	inside1 := domain.Event{Scope: "SAU", Day: "2025-06-15", Label: "dhuhr", Time: now.Add(-10 * time.Second)}
	inside2 := domain.Event{Scope: "EGY", Day: "2025-06-15", Label: "dhuhr", Time: now.Add(5 * time.Second)}
	outside := domain.Event{Scope: "SAU", Day: "2025-06-15", Label: "asr", Time: now.Add(3 * time.Hour)}
	seedIndex(t, index, inside1, inside2, outside)

	dispatcher := &stubDispatcher{}
	poller := NewPoller(index, dispatcher, discardLogger(), nil, 0)

	fired, err := poller.Poll(context.Background(), now)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if len(fired) != 2 {
		t.Fatalf("Poll() fired %d events, want 2", len(fired))
	}
	// Ascending by timestamp.
	if fired[0].Label != "dhuhr" || fired[0].Scope != "SAU" {
		t.Errorf("first fired = %v, want SAU dhuhr", fired[0].Key())
	}
	if fired[1].Scope != "EGY" {
		t.Errorf("second fired = %v, want EGY dhuhr", fired[1].Key())
	}

	// Fired entries are gone; a second poll of the same window is
	// empty.
	again, err := poller.Poll(context.Background(), now)
	if err != nil {
		t.Fatalf("second Poll() error = %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second Poll() fired %d events, want 0", len(again))
	}

	// The entry outside the window is untouched.
	left, err := index.Range(context.Background(), now, now.Add(4*time.Hour))
	if err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	if len(left) != 1 || left[0].Label != "asr" {
		t.Errorf("remaining = %v, want only asr", left)
	}
}

func TestPoller_Poll_EvictsStaleEntries(t *testing.T) {
	index := eventindex.NewMemory()
	now := time.Date(2025, 6, 15, 12, 1, 0, 0, time.UTC)

	stale := domain.Event{Scope: "SAU", Day: "2025-06-14", Label: "isha", Time: now.Add(-2 * time.Hour)}
	seedIndex(t, index, stale)

	dispatcher := &stubDispatcher{}
	poller := NewPoller(index, dispatcher, discardLogger(), nil, 0)

	fired, err := poller.Poll(context.Background(), now)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if len(fired) != 0 {
		t.Errorf("Poll() fired %d events, want 0: stale entries never fire late", len(fired))
	}

	left, err := index.Range(context.Background(), now.Add(-24*time.Hour), now.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("Range() error = %v", err)
	}
	if len(left) != 0 {
		t.Errorf("stale entry still present: %v", left)
	}
}

func TestPoller_Poll_DispatchFailureStillRemoves(t *testing.T) {
	index := eventindex.NewMemory()
	now := time.Date(2025, 6, 15, 12, 1, 0, 0, time.UTC)

	event := domain.Event{Scope: "SAU", Day: "2025-06-15", Label: "dhuhr", Time: now}
	seedIndex(t, index, event)

	dispatcher := &stubDispatcher{err: errors.New("fcm unavailable")}
	poller := NewPoller(index, dispatcher, discardLogger(), nil, 0)

	fired, err := poller.Poll(context.Background(), now)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if len(fired) != 1 {
		t.Fatalf("Poll() fired %d events, want 1", len(fired))
	}

	// At most once: the entry must not fire again on the next tick.
	again, err := poller.Poll(context.Background(), now)
	if err != nil {
		t.Fatalf("second Poll() error = %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second Poll() fired %d events, want 0", len(again))
	}
}

func TestPoller_Poll_LoserSkipsDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	index := domain.NewMockEventIndex(ctrl)

	now := time.Date(2025, 6, 15, 12, 1, 0, 0, time.UTC)
	event := domain.Event{Scope: "SAU", Day: "2025-06-15", Label: "dhuhr", Time: now}

	index.EXPECT().EvictBefore(gomock.Any(), gomock.Any()).Return(0, nil)
	index.EXPECT().Range(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.Event{event}, nil)
	// Another poller removed the entry between Range and Remove.
	index.EXPECT().Remove(gomock.Any(), event.Key()).Return(false, nil)

	dispatcher := &stubDispatcher{}
	poller := NewPoller(index, dispatcher, discardLogger(), nil, 0)

	fired, err := poller.Poll(context.Background(), now)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if len(fired) != 0 {
		t.Errorf("Poll() fired %d events, want 0 for the losing poller", len(fired))
	}
	if len(dispatcher.fired) != 0 {
		t.Errorf("losing poller dispatched %v", dispatcher.fired)
	}
}

func TestPoller_Poll_NonReentrant(t *testing.T) {
	index := eventindex.NewMemory()
	now := time.Date(2025, 6, 15, 12, 1, 0, 0, time.UTC)
	seedIndex(t, index, domain.Event{Scope: "SAU", Day: "2025-06-15", Label: "dhuhr", Time: now})

	dispatcher := &stubDispatcher{
		blockOn: make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	poller := NewPoller(index, dispatcher, discardLogger(), nil, 0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := poller.Poll(context.Background(), now); err != nil {
			t.Errorf("Poll() error = %v", err)
		}
	}()

	<-dispatcher.entered

	fired, err := poller.Poll(context.Background(), now)
	if err != nil {
		t.Fatalf("overlapping Poll() error = %v", err)
	}
	if fired != nil {
		t.Errorf("overlapping Poll() fired %v, want nil", fired)
	}

	close(dispatcher.blockOn)
	<-done
}
