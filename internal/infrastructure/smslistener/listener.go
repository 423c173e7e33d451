package smslistener

import (
	"context"
	"sort"
	"sync"
	"time"

	"log/slog"

	"github.com/iho/fintrack/internal/usecase"
)

// Handler processes one raw message to completion.
type Handler interface {
	HandleMessage(ctx context.Context, sender, body string) (usecase.IngestOutcome, error)
}

// OutcomeObserver records ingest outcomes, typically into metrics.
type OutcomeObserver interface {
	ObserveIngest(outcome string)
}

// Config for Listener.
type Config struct {
	Source   usecase.InboxSource
	Handler  Handler
	Logger   *slog.Logger
	Observer OutcomeObserver // optional

	Interval  time.Duration // polling interval
	BatchSize int           // max inbox entries fetched per tick
}

// Listener polls the message source on a fixed interval and feeds fresh
// messages to the handler, one at a time, oldest first. It owns all its
// state (active flag, watermark, cancel handle) rather than keeping it in
// process-wide globals.
//
// Messages at or before the watermark are skipped; after each tick the
// watermark advances to the maximum timestamp seen. If more than BatchSize
// messages arrive within one interval the overflow is lost: a deliberate
// tradeoff that bounds catch-up scans.
type Listener struct {
	source   usecase.InboxSource
	handler  Handler
	logger   *slog.Logger
	observer OutcomeObserver

	interval  time.Duration
	batchSize int

	mu        sync.Mutex
	active    bool
	cancel    context.CancelFunc
	watermark time.Time
}

// New creates a Listener.
func New(cfg Config) *Listener {
	if cfg.Interval == 0 {
		cfg.Interval = 5 * time.Second
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 10
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Listener{
		source:    cfg.Source,
		handler:   cfg.Handler,
		logger:    cfg.Logger,
		observer:  cfg.Observer,
		interval:  cfg.Interval,
		batchSize: cfg.BatchSize,
	}
}

// Start begins polling. If the source is unreachable (the platform
// permission-denied case), Start logs a warning and returns without a
// worker: listening is unavailable for this session, nothing retries it.
// Messages older than the start time are never delivered.
func (l *Listener) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active {
		return nil
	}

	if err := l.source.Ping(ctx); err != nil {
		l.logger.Warn("sms inbox unavailable, listener not started",
			slog.String("error", err.Error()))
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	l.active = true
	l.cancel = cancel
	l.watermark = time.Now()

	go l.run(runCtx)

	l.logger.Info("sms listener started",
		slog.Duration("interval", l.interval),
		slog.Int("batch_size", l.batchSize))

	return nil
}

// Stop halts polling. A tick already in flight observes the cleared active
// flag and discards its results.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.active {
		return
	}

	l.active = false
	l.cancel()
	l.cancel = nil

	l.logger.Info("sms listener stopped")
}

// IsActive reports whether the listener is polling.
func (l *Listener) IsActive() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

func (l *Listener) run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	// Poll immediately on start
	l.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.poll(ctx)
		}
	}
}

func (l *Listener) poll(ctx context.Context) {
	if !l.IsActive() {
		return
	}

	messages, err := l.source.FetchLatest(ctx, l.batchSize)
	if err != nil {
		l.logger.Error("inbox poll failed", slog.String("error", err.Error()))
		return
	}

	fresh, maxSeen := l.filterFresh(messages)

	// Oldest first, so repository side effects follow arrival order.
	sort.Slice(fresh, func(i, j int) bool {
		return fresh[i].ReceivedAt.Before(fresh[j].ReceivedAt)
	})

	for _, msg := range fresh {
		if !l.IsActive() {
			return
		}

		outcome, err := l.handler.HandleMessage(ctx, msg.Sender, msg.Body)
		if err != nil {
			// One bad message never halts ingestion of the rest.
			l.logger.Error("message ingestion failed",
				slog.String("sender", msg.Sender),
				slog.String("error", err.Error()))
			continue
		}

		if l.observer != nil {
			l.observer.ObserveIngest(string(outcome))
		}

		l.logger.Debug("message processed",
			slog.String("sender", msg.Sender),
			slog.String("outcome", string(outcome)))
	}

	l.advanceWatermark(maxSeen)
}

// filterFresh drops messages at or before the watermark and reports the
// maximum timestamp seen in the fetched batch.
func (l *Listener) filterFresh(messages []usecase.InboxMessage) ([]usecase.InboxMessage, time.Time) {
	l.mu.Lock()
	watermark := l.watermark
	l.mu.Unlock()

	maxSeen := watermark

	var fresh []usecase.InboxMessage
	for _, msg := range messages {
		if msg.ReceivedAt.After(maxSeen) {
			maxSeen = msg.ReceivedAt
		}

		if msg.ReceivedAt.After(watermark) {
			fresh = append(fresh, msg)
		}
	}

	return fresh, maxSeen
}

func (l *Listener) advanceWatermark(maxSeen time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if maxSeen.After(l.watermark) {
		l.watermark = maxSeen
	}
}
