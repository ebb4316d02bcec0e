package sync

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler timing defaults, mirroring the polling behaviour of the client:
// a short warm-up before the first cycle, then a fixed interval.
const (
	DefaultInterval = 30 * time.Second
	DefaultWarmup   = 800 * time.Millisecond
)

// Scheduler drives periodic reconciliation cycles.
//
// В любой момент выполняется не больше одного цикла: флаг inFlight
// проверяется атомарно на старте цикла, лишние триггеры (по таймеру или
// ручные) отбрасываются, не ставятся в очередь - следующий tick подберет
// пропущенную работу.
type Scheduler struct {
	service  *Service
	logger   *slog.Logger
	interval time.Duration
	warmup   time.Duration

	inFlight atomic.Bool

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a stopped scheduler.
// Неположительные значения interval/warmup заменяются дефолтами.
func NewScheduler(service *Service, interval, warmup time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if warmup <= 0 {
		warmup = DefaultWarmup
	}

	return &Scheduler{
		service:  service,
		logger:   logger,
		interval: interval,
		warmup:   warmup,
	}
}

// Start begins periodic cycles: the first fires after the warm-up delay,
// subsequent ones every interval. Повторный Start без Stop - no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.ctx = runCtx
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)

	s.logger.Info("Scheduler started",
		"interval", s.interval,
		"warmup", s.warmup)
}

// Stop cancels all pending and future cycles. A cycle already running is
// allowed to finish; after Stop returns no new cycle begins.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel == nil {
		s.mu.Unlock()
		return
	}
	cancel := s.cancel
	s.cancel = nil
	s.ctx = nil
	s.mu.Unlock()

	cancel()
	s.wg.Wait()

	s.logger.Info("Scheduler stopped")
}

// TriggerNow runs an immediate out-of-band cycle on the caller's goroutine.
// If a cycle is already in flight the trigger is dropped, not queued.
// No-op when the scheduler is stopped.
func (s *Scheduler) TriggerNow() {
	s.mu.Lock()
	runCtx := s.ctx
	s.mu.Unlock()

	if runCtx == nil {
		return
	}

	s.runCycle(runCtx)
}

// run is the scheduler loop: warm-up cycle first, then ticker-driven ones.
func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	warmup := time.NewTimer(s.warmup)
	defer warmup.Stop()

	select {
	case <-ctx.Done():
		return
	case <-warmup.C:
		s.runCycle(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

// runCycle executes one cycle unless the scheduler is stopped or another
// cycle is in flight.
func (s *Scheduler) runCycle(ctx context.Context) {
	// Уже запланированный, но не начатый цикл не должен стартовать
	// после Stop
	if ctx.Err() != nil {
		return
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Debug("Cycle already in flight, dropping trigger")
		return
	}
	defer s.inFlight.Store(false)

	if _, err := s.service.SyncOnce(ctx); err != nil {
		// Транзиентная ошибка: следующий tick попробует снова
		s.logger.Warn("Sync cycle failed", "error", err)
	}
}
