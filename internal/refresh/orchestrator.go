package refresh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/MikeSquared-Agency/mitra/internal/catalog"
	"github.com/MikeSquared-Agency/mitra/internal/store"
	"github.com/MikeSquared-Agency/mitra/internal/transcript"
)

// SubjectCompleted is published after every finished pass.
const SubjectCompleted = "swarm.mitra.refresh.completed"

// ErrPassInProgress is returned when a trigger arrives while a pass is running.
var ErrPassInProgress = errors.New("refresh pass already in progress")

type Scanner interface {
	Scan(ctx context.Context, sourceID string) ([]catalog.Item, error)
}

type Acquirer interface {
	Acquire(ctx context.Context, videoID string) (string, error)
}

// Publisher is satisfied by the hermes client. Optional.
type Publisher interface {
	Publish(subject string, data any) error
}

// Report summarises one pass.
type Report struct {
	PassID     uuid.UUID `json:"pass_id"`
	Scanned    int       `json:"scanned"`
	Added      int       `json:"added"`
	Missing    int       `json:"missing"`
	Total      int       `json:"total"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Orchestrator reconciles the channel catalog against the store. It is the
// only writer of the store and never runs two passes at once.
type Orchestrator struct {
	scanner   Scanner
	acquirer  Acquirer
	store     *store.Store
	sourceID  string
	publisher Publisher
	logger    *slog.Logger

	guard    *semaphore.Weighted
	scanning atomic.Bool
	now      func() time.Time
}

func New(sc Scanner, acq Acquirer, st *store.Store, sourceID string, pub Publisher, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		scanner:   sc,
		acquirer:  acq,
		store:     st,
		sourceID:  sourceID,
		publisher: pub,
		logger:    logger,
		guard:     semaphore.NewWeighted(1),
		now:       time.Now,
	}
}

// Scanning reports whether a pass is currently running.
func (o *Orchestrator) Scanning() bool {
	return o.scanning.Load()
}

// TryRun runs one pass unless another is in flight, in which case the
// trigger is dropped and ErrPassInProgress returned.
func (o *Orchestrator) TryRun(ctx context.Context) (Report, error) {
	if !o.acquire() {
		return Report{}, ErrPassInProgress
	}
	defer o.release()

	return o.runPass(ctx)
}

// TryStart claims the pass guard and runs the pass in the background. It
// returns false without starting anything when a pass already holds the guard.
func (o *Orchestrator) TryStart(ctx context.Context) bool {
	if !o.acquire() {
		return false
	}
	go func() {
		defer o.release()
		_, _ = o.runPass(ctx)
	}()
	return true
}

func (o *Orchestrator) acquire() bool {
	if !o.guard.TryAcquire(1) {
		passesTotal.WithLabelValues("skipped").Inc()
		o.logger.Info("refresh trigger dropped, pass in progress")
		return false
	}
	o.scanning.Store(true)
	return true
}

func (o *Orchestrator) release() {
	o.scanning.Store(false)
	o.guard.Release(1)
}

func (o *Orchestrator) runPass(ctx context.Context) (Report, error) {
	rep := Report{PassID: uuid.New(), StartedAt: o.now()}
	logger := o.logger.With("pass_id", rep.PassID.String())

	logger.Info("checking for new videos", "source_id", o.sourceID)

	items, err := o.scanner.Scan(ctx, o.sourceID)
	if err != nil {
		passesTotal.WithLabelValues("scan_failed").Inc()
		logger.Error("catalog scan failed", "error", err)
		return rep, fmt.Errorf("scan catalog: %w", err)
	}
	rep.Scanned = len(items)

	for _, it := range items {
		if o.store.Contains(it.ID) {
			continue
		}

		logger.Info("new video found", "video_id", it.ID, "title", it.Title)

		// No lock is held while the provider call is in flight.
		text, err := o.acquirer.Acquire(ctx, it.ID)
		if err != nil {
			rep.Missing++
			transcriptMissesTotal.Inc()
			if errors.Is(err, transcript.ErrNotFound) {
				logger.Warn("no transcript for video", "video_id", it.ID, "title", it.Title)
			} else {
				logger.Error("transcript acquisition failed", "video_id", it.ID, "error", err)
			}
			continue
		}

		if o.store.Merge(it, text) {
			rep.Added++
			videosAddedTotal.Inc()
			logger.Info("video added", "video_id", it.ID, "title", it.Title)
		}
	}

	rep.Total = o.store.Len()
	rep.FinishedAt = o.now()
	o.store.MarkUpdated(rep.FinishedAt)

	passesTotal.WithLabelValues("ok").Inc()
	knowledgeVideos.Set(float64(rep.Total))
	passDuration.Observe(rep.FinishedAt.Sub(rep.StartedAt).Seconds())

	logger.Info("update complete",
		"scanned", rep.Scanned,
		"added", rep.Added,
		"missing", rep.Missing,
		"total", rep.Total,
	)

	if o.publisher != nil {
		if err := o.publisher.Publish(SubjectCompleted, rep); err != nil {
			logger.Warn("failed to publish refresh report", "error", err)
		}
	}

	return rep, nil
}

// Start triggers a pass after delay and then every interval until ctx is
// done. Each trigger runs in its own goroutine so a slow pass causes later
// triggers to be dropped rather than queued.
func (o *Orchestrator) Start(ctx context.Context, delay, interval time.Duration) {
	go o.loop(ctx, delay, interval)
}

func (o *Orchestrator) loop(ctx context.Context, delay, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}

	first := time.NewTimer(delay)
	defer first.Stop()

	select {
	case <-ctx.Done():
		return
	case <-first.C:
		go o.trigger(ctx)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go o.trigger(ctx)
		}
	}
}

// trigger discards the result; TryRun logs failures and the next tick
// retries from scratch.
func (o *Orchestrator) trigger(ctx context.Context) {
	_, _ = o.TryRun(ctx)
}
