package probe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type fakePinger struct {
	err   error
	calls atomic.Int32
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("ping without deadline")
	}
	return f.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMonitorStoresLastResult(t *testing.T) {
	p := &fakePinger{}
	m := NewMonitor(p, time.Second, quietLogger())
	if m.Last() != nil {
		t.Fatalf("expected nil before first check")
	}

	res := m.Check(context.Background())
	if !res.OK || res.Error != "" || res.CheckedAt == "" {
		t.Fatalf("unexpected result: %+v", res)
	}
	last := m.Last()
	if last == nil || *last != res {
		t.Fatalf("last=%+v want=%+v", last, res)
	}

	p.err = errors.New("401 unauthorized")
	res = m.Check(context.Background())
	if res.OK || res.Error != "401 unauthorized" {
		t.Fatalf("unexpected failure result: %+v", res)
	}
	if got := m.Last(); got.OK {
		t.Fatalf("last result not replaced: %+v", got)
	}
}

func TestMonitorLastReturnsCopy(t *testing.T) {
	m := NewMonitor(&fakePinger{}, time.Second, quietLogger())
	m.Check(context.Background())
	m.Last().Error = "mutated"
	if m.Last().Error != "" {
		t.Fatalf("Last exposed internal state")
	}
}

func TestNilMonitorLast(t *testing.T) {
	var m *Monitor
	if m.Last() != nil {
		t.Fatalf("nil monitor should report no result")
	}
}

func TestSchedulerRunsImmediately(t *testing.T) {
	p := &fakePinger{}
	m := NewMonitor(p, time.Second, quietLogger())
	s, err := NewScheduler(m, time.Hour)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	s.Start()
	defer s.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for m.Last() == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if m.Last() == nil || p.calls.Load() == 0 {
		t.Fatalf("scheduled probe did not run")
	}
}
