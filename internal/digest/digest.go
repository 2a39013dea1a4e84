package digest

import (
	"context"
	"log/slog"
	"time"

	"github.com/toolscout/toolscout/internal/events"
	"github.com/toolscout/toolscout/internal/store"
)

// Digest periodically reads aggregate stats and publishes them as a
// StatsEvent. It is a no-op when the event client is absent.
type Digest struct {
	store    store.Store
	events   events.Client
	interval time.Duration
	logger   *slog.Logger
	stop     chan struct{}
	done     chan struct{}
}

func New(s store.Store, e events.Client, interval time.Duration, logger *slog.Logger) *Digest {
	return &Digest{
		store:    s,
		events:   e,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the publish loop. Returns immediately.
func (d *Digest) Start(ctx context.Context) {
	go d.run(ctx)
}

// Stop signals the loop and waits for it to exit.
func (d *Digest) Stop() {
	close(d.stop)
	<-d.done
}

func (d *Digest) run(ctx context.Context) {
	defer close(d.done)
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stop:
			return
		case <-ticker.C:
			d.publish(ctx)
		}
	}
}

func (d *Digest) publish(ctx context.Context) {
	if d.events == nil {
		return
	}
	stats, err := d.store.GetStats(ctx)
	if err != nil {
		d.logger.Warn("digest: failed to read stats", "error", err)
		return
	}
	ev := events.StatsEvent{
		TotalSubmissions: stats.TotalSubmissions,
		TotalClicks:      stats.TotalClicks,
		ClicksByTool:     stats.ClicksByTool,
		Timestamp:        time.Now().UTC(),
	}
	if err := d.events.Publish(events.SubjectSiteStats, ev); err != nil {
		d.logger.Warn("digest: failed to publish stats", "error", err)
	}
}
