// Package scheduler drives recurring wallet monitoring passes.
//
// Three jobs are registered on Start: a daily pass, a pass every few hours
// and a short interval probe for development. Production arms the first two,
// any other mode arms only the probe. All jobs and manual triggers share one
// batch lock so at most one pass runs at a time. With a shared BatchLock the
// guarantee spans every process using the same store, and a StatusStore lets
// those processes read the job statuses of the running scheduler.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gabapcia/walletmonitor/internal/pkg/logger"
	"github.com/gabapcia/walletmonitor/internal/walletmonitor"
)

var (
	// ErrServiceAlreadyStarted is returned by Start on a running scheduler.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrBatchInProgress is returned by TriggerNow while another pass holds the batch lock.
	ErrBatchInProgress = errors.New("batch pass already in progress")
)

// statusHeartbeat is how often a started scheduler republishes its job
// statuses. Published statuses expire after statusTTL.
const (
	statusHeartbeat      = 30 * time.Second
	statusTTL            = 3 * statusHeartbeat
	statusPublishTimeout = 5 * time.Second
)

// BatchRunner runs one pass over all active monitors.
type BatchRunner interface {
	MonitorAll(ctx context.Context) (walletmonitor.Summary, error)
}

// BatchLock serializes batch passes.
type BatchLock interface {
	// TryLock takes the lock without waiting. acquired is false when another
	// holder owns it. unlock is only set when acquired is true.
	TryLock(ctx context.Context) (unlock func(), acquired bool, err error)
}

// StatusStore shares job statuses between processes.
type StatusStore interface {
	// SaveJobStatus publishes statuses for ttl.
	SaveJobStatus(ctx context.Context, statuses []JobStatus, ttl time.Duration) error

	// LoadJobStatus returns the last published statuses, nil when none are live.
	LoadJobStatus(ctx context.Context) ([]JobStatus, error)
}

// Service controls the recurring jobs.
type Service interface {
	// Start registers every job and arms the ones that belong to the mode.
	Start(ctx context.Context) error

	// Stop disarms every job and waits for a running tick to return.
	Stop()

	// Status reports every job of this process in registration order.
	Status() []JobStatus

	// Report is Status for this process once started. Before that it returns
	// the statuses published by a scheduler running elsewhere, if any.
	Report(ctx context.Context) ([]JobStatus, error)

	// TriggerNow runs one pass synchronously, outside the timers.
	TriggerNow(ctx context.Context) (walletmonitor.Summary, error)
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	batchLock   BatchLock
	statusStore StatusStore

	runner     BatchRunner
	production bool
	jobs       []job
	location   *time.Location

	cron    *cron.Cron
	entries map[string]cron.EntryID
	running map[string]bool
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	c := cron.New(
		cron.WithLocation(s.location),
		cron.WithLogger(cronLogger{ctx: ctx}),
		cron.WithChain(cron.Recover(cronLogger{ctx: ctx})),
	)

	entries := make(map[string]cron.EntryID)
	for _, j := range s.jobs {
		if !j.armedFor(s.production) {
			continue
		}

		id, err := c.AddFunc(j.spec, func() { s.runScheduled(ctx, j) })
		if err != nil {
			cancel()
			return err
		}
		entries[j.name] = id
	}

	if s.statusStore != nil {
		if _, err := c.AddFunc(fmt.Sprintf("@every %s", statusHeartbeat), func() { s.publishStatus(ctx) }); err != nil {
			cancel()
			return err
		}
	}

	c.Start()

	s.cron = c
	s.entries = entries
	s.running = make(map[string]bool)
	s.closeFunc = func() {
		cancel()
		<-c.Stop().Done()
	}
	s.isStarted = true

	statuses := s.statusLocked()
	for _, status := range statuses {
		logger.Info(ctx, "job registered",
			"job.name", status.Name,
			"job.schedule", status.Schedule,
			"job.armed", status.Armed,
		)
	}

	s.saveStatus(ctx, statuses)

	return nil
}

func (s *service) Stop() {
	s.mu.Lock()
	closeFn := s.closeFunc
	s.closeFunc = nil
	s.isStarted = false
	s.mu.Unlock()

	// The lock is released while waiting so a finishing tick can update its state.
	if closeFn != nil {
		closeFn()
	}

	s.mu.Lock()
	s.entries = nil
	statuses := s.statusLocked()
	s.mu.Unlock()

	if closeFn != nil {
		s.saveStatus(context.Background(), statuses)
	}
}

func (s *service) Status() []JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.statusLocked()
}

func (s *service) Report(ctx context.Context) ([]JobStatus, error) {
	s.mu.Lock()
	started := s.isStarted
	statuses := s.statusLocked()
	s.mu.Unlock()

	if started || s.statusStore == nil {
		return statuses, nil
	}

	published, err := s.statusStore.LoadJobStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("load job status: %w", err)
	}

	if len(published) == 0 {
		return statuses, nil
	}

	return published, nil
}

// publishStatus shares the current statuses through the status store.
func (s *service) publishStatus(ctx context.Context) {
	s.saveStatus(ctx, s.Status())
}

// saveStatus writes statuses to the status store. Failures are only logged.
func (s *service) saveStatus(ctx context.Context, statuses []JobStatus) {
	if s.statusStore == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), statusPublishTimeout)
	defer cancel()

	if err := s.statusStore.SaveJobStatus(ctx, statuses, statusTTL); err != nil {
		logger.Warn(ctx, "job status not published", "error", err)
	}
}

func (s *service) statusLocked() []JobStatus {
	statuses := make([]JobStatus, 0, len(s.jobs))
	for _, j := range s.jobs {
		status := JobStatus{
			Name:        j.name,
			Description: j.description,
			Schedule:    j.spec,
			Scheduled:   s.isStarted,
			Running:     s.running[j.name],
		}

		if id, ok := s.entries[j.name]; ok && s.isStarted {
			status.Armed = true
			status.NextRun = s.cron.Entry(id).Next
		}

		statuses = append(statuses, status)
	}

	return statuses
}

func (s *service) setRunning(ctx context.Context, name string, running bool) {
	s.mu.Lock()
	if s.running != nil {
		s.running[name] = running
	}
	statuses := s.statusLocked()
	s.mu.Unlock()

	s.saveStatus(ctx, statuses)
}

// acquireBatch takes the batch lock, or returns ErrBatchInProgress when
// another pass holds it.
func (s *service) acquireBatch(ctx context.Context) (func(), error) {
	unlock, acquired, err := s.batchLock.TryLock(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire batch lock: %w", err)
	}

	if !acquired {
		return nil, ErrBatchInProgress
	}

	return unlock, nil
}

// runScheduled is the body of every cron tick. A tick that finds the batch
// lock taken is skipped.
func (s *service) runScheduled(ctx context.Context, j job) {
	ctx = logger.Derive(ctx, "job.name", j.name)

	if j.devOnly && s.production {
		logger.Debug(ctx, "dev only job skipped in production")
		return
	}

	unlock, err := s.acquireBatch(ctx)
	if errors.Is(err, ErrBatchInProgress) {
		logger.Warn(ctx, "scheduled pass skipped, another pass is running")
		return
	}
	if err != nil {
		logger.Error(ctx, "scheduled pass skipped", "error", err)
		return
	}
	defer unlock()

	s.setRunning(ctx, j.name, true)
	defer s.setRunning(ctx, j.name, false)

	logger.Info(ctx, "scheduled pass started")

	summary, err := s.runner.MonitorAll(ctx)
	if err != nil {
		logger.Error(ctx, "scheduled pass failed", "batch.id", summary.BatchID, "error", err)
		return
	}

	logger.Info(ctx, "scheduled pass completed",
		"batch.id", summary.BatchID,
		"batch.wallets_checked", summary.WalletsChecked,
		"batch.transactions_new", summary.NewTransactionsFound,
	)
}

func (s *service) TriggerNow(ctx context.Context) (walletmonitor.Summary, error) {
	unlock, err := s.acquireBatch(ctx)
	if err != nil {
		return walletmonitor.Summary{}, err
	}
	defer unlock()

	ctx = logger.Derive(ctx, "job.name", "manual")
	logger.Info(ctx, "manual pass started")

	return s.runner.MonitorAll(ctx)
}

type config struct {
	production            bool
	dailyHour             int
	frequentIntervalHours int
	probeIntervalMinutes  int
	location              *time.Location
	batchLock             BatchLock
	statusStore           StatusStore
}

// Option configures the scheduler.
type Option func(*config)

// New builds a scheduler for runner. By default it runs in development mode
// with the daily pass at 02:00 UTC, the frequent pass every 4 hours and the
// probe every 5 minutes. Without WithBatchLock passes are only serialized
// inside this process.
func New(runner BatchRunner, opts ...Option) *service {
	cfg := config{
		dailyHour:             2,
		frequentIntervalHours: 4,
		probeIntervalMinutes:  5,
		location:              time.UTC,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.batchLock == nil {
		cfg.batchLock = new(localLock)
	}

	return &service{
		batchLock:   cfg.batchLock,
		statusStore: cfg.statusStore,
		runner:      runner,
		production:  cfg.production,
		jobs:        buildJobs(cfg),
		location:    cfg.location,
	}
}

// WithProduction selects the production job set.
func WithProduction(production bool) Option {
	return func(c *config) {
		c.production = production
	}
}

// WithDailyHour sets the UTC hour of the daily pass.
func WithDailyHour(hour int) Option {
	return func(c *config) {
		c.dailyHour = hour
	}
}

// WithFrequentInterval sets the hours between frequent passes.
func WithFrequentInterval(hours int) Option {
	return func(c *config) {
		c.frequentIntervalHours = hours
	}
}

// WithProbeInterval sets the minutes between development probe passes.
func WithProbeInterval(minutes int) Option {
	return func(c *config) {
		c.probeIntervalMinutes = minutes
	}
}

// WithBatchLock replaces the in-process batch lock, typically with one shared
// by every process that can run a pass.
func WithBatchLock(lock BatchLock) Option {
	return func(c *config) {
		c.batchLock = lock
	}
}

// WithStatusStore publishes job statuses to store while started and lets
// Report read them from other processes.
func WithStatusStore(store StatusStore) Option {
	return func(c *config) {
		c.statusStore = store
	}
}

// localLock is the default BatchLock, scoped to one process.
type localLock struct {
	mu sync.Mutex
}

var _ BatchLock = (*localLock)(nil)

func (l *localLock) TryLock(context.Context) (func(), bool, error) {
	if !l.mu.TryLock() {
		return nil, false, nil
	}

	return l.mu.Unlock, true, nil
}

// cronLogger forwards the cron runner's logs to the package logger.
type cronLogger struct {
	ctx context.Context
}

var _ cron.Logger = cronLogger{}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	logger.Debug(l.ctx, "cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	logger.Error(l.ctx, "cron: "+msg, append(keysAndValues, "error", err)...)
}
