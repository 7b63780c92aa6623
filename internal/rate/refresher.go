package rate

import (
	"context"
	"sync"
	"time"

	"currex/internal/adapters"
	"currex/internal/metrics"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

const (
	defaultRefreshInterval = 15 * time.Minute
	defaultRetryBackoff    = 5 * time.Minute
	defaultFetchTimeout    = 15 * time.Second

	// checkInterval is the tick at which the scheduler re-evaluates whether a
	// fetch is due. It bounds how late a fetch can start, never how early.
	checkInterval = time.Minute
)

type RefresherConfig struct {
	// Interval is the pause after a successful refresh.
	Interval time.Duration
	// RetryBackoff is the shorter pause after a failed attempt.
	RetryBackoff time.Duration
	// FetchTimeout bounds a single provider request.
	FetchTimeout time.Duration
}

// Refresher periodically pulls fresh rates into the cache. It is the only
// writer; fetch failures are contained here and only ever delay the next
// attempt, readers keep working off the last applied batch.
type Refresher struct {
	provider  adapters.RateProvider
	cache     *Cache
	pairCache adapters.PairRateCache
	metrics   *metrics.Metrics
	clock     clockwork.Clock

	interval     time.Duration
	retryBackoff time.Duration
	fetchTimeout time.Duration

	mu     sync.Mutex
	nextAt time.Time
	sched  gocron.Scheduler
}

func NewRefresher(provider adapters.RateProvider, cache *Cache, pairCache adapters.PairRateCache, m *metrics.Metrics, clock clockwork.Clock, cfg RefresherConfig) *Refresher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultRefreshInterval
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = defaultRetryBackoff
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	return &Refresher{
		provider:     provider,
		cache:        cache,
		pairCache:    pairCache,
		metrics:      m,
		clock:        clock,
		interval:     cfg.Interval,
		retryBackoff: cfg.RetryBackoff,
		fetchTimeout: cfg.FetchTimeout,
	}
}

// Start schedules the refresh loop. The first fetch fires immediately; after
// that a fetch runs once its due time has passed. Cancellation of ctx shuts
// the scheduler down; an in-flight fetch is left to finish and its result is
// still processed before the scheduler stops.
func (r *Refresher) Start(ctx context.Context) error {
	// The stop timeout must outlast a fetch so Shutdown waits for an
	// in-flight request instead of abandoning it.
	scheduler, err := gocron.NewScheduler(
		gocron.WithClock(r.clock),
		gocron.WithStopTimeout(r.fetchTimeout+time.Second),
	)
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		r.runDue(jobCtx)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(checkInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	r.mu.Lock()
	r.sched = scheduler
	r.mu.Unlock()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := r.Shutdown(); sdErr != nil {
			logrus.Errorf("Refresher shutdown error: %v", sdErr)
		}
	}()
	return nil
}

// Shutdown stops the scheduler and waits for a running job to finish. Safe
// to call from multiple goroutines; only the first caller stops the
// scheduler, the rest are no-ops.
func (r *Refresher) Shutdown() error {
	r.mu.Lock()
	sched := r.sched
	r.sched = nil
	r.mu.Unlock()
	if sched == nil {
		return nil
	}
	// Shutdown blocks on the in-flight job; taking r.mu across it would
	// deadlock with runDue.
	return sched.Shutdown()
}

// runDue performs one refresh attempt if the due time has passed, then
// schedules the next attempt: a full interval after success, the shorter
// backoff after a failure.
func (r *Refresher) runDue(ctx context.Context) {
	now := r.clock.Now()
	r.mu.Lock()
	if now.Before(r.nextAt) {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	execID := uuid.NewString()
	// Detach from the job context: shutdown cancels it, but a fetch already
	// in flight is allowed to complete and its result applied. The request
	// stays bounded by its own timeout.
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.fetchTimeout)
	err := RefreshRates(fetchCtx, execID, r.provider, r.cache, r.pairCache, r.metrics)
	cancel()

	pause := r.interval
	if err != nil {
		pause = r.retryBackoff
		r.metrics.RefreshFailureTotal.Inc()
		logrus.WithError(err).Errorf("Rate refresh %s failed, next attempt in %s", execID, pause)
	} else {
		r.metrics.RefreshSuccessTotal.Inc()
	}

	r.mu.Lock()
	r.nextAt = r.clock.Now().Add(pause)
	r.mu.Unlock()
}
