package probe

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"petdiary/internal/domain"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor keeps the result of the most recent provider check.
type Monitor struct {
	pinger  Pinger
	timeout time.Duration
	logger  *slog.Logger
	now     func() time.Time

	mu   sync.RWMutex
	last *domain.ProbeResult
}

func NewMonitor(pinger Pinger, timeout time.Duration, logger *slog.Logger) *Monitor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		pinger:  pinger,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// Check pings the provider once and stores the outcome.
func (m *Monitor) Check(ctx context.Context) domain.ProbeResult {
	callCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	start := m.now()
	err := m.pinger.Ping(callCtx)
	res := domain.ProbeResult{
		OK:        err == nil,
		CheckedAt: m.now().UTC().Format(time.RFC3339),
		LatencyMS: m.now().Sub(start).Milliseconds(),
	}
	if err != nil {
		res.Error = err.Error()
		m.logger.Warn("provider probe failed", "error", err)
	} else {
		m.logger.Debug("provider probe ok", "latency_ms", res.LatencyMS)
	}

	m.mu.Lock()
	m.last = &res
	m.mu.Unlock()
	return res
}

// Last returns a copy of the latest result, or nil before the first check.
func (m *Monitor) Last() *domain.ProbeResult {
	if m == nil {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.last == nil {
		return nil
	}
	res := *m.last
	return &res
}

// Scheduler runs Monitor.Check on a fixed interval.
type Scheduler struct {
	scheduler gocron.Scheduler
}

func NewScheduler(monitor *Monitor, interval time.Duration) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { monitor.Check(context.Background()) }),
		gocron.WithName("provider-probe"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, err
	}
	return &Scheduler{scheduler: s}, nil
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
}

func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}
