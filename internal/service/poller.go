package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"thermal_sentinel/internal/logger"
	"thermal_sentinel/internal/models"

	"golang.org/x/sync/errgroup"
)

// DefaultPollInterval is the live telemetry refresh period.
const DefaultPollInterval = 3 * time.Second

// PollerService refreshes telemetry on a fixed interval and feeds each
// reading to the notifier. Timer transitions of the notifier are fired at
// their deadline, independent of poll ticks.
type PollerService struct {
	source    LiveSource
	telemetry *TelemetryService
	notifier  *NotifierService
	log       *logger.Logger
	now       func() time.Time
}

func NewPollerService(source LiveSource, telemetry *TelemetryService, notifier *NotifierService, log *logger.Logger) *PollerService {
	return &PollerService{
		source:    source,
		telemetry: telemetry,
		notifier:  notifier,
		log:       log,
		now:       time.Now,
	}
}

// Run polls immediately and then every tick until ctx is canceled.
func (p *PollerService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultPollInterval
	}
	t := time.NewTicker(tick)
	defer t.Stop()

	p.pollAndLog(ctx)

	for {
		deadline, stop := p.deadlineTimer()
		select {
		case <-ctx.Done():
			stop()
			return
		case <-t.C:
			stop()
			p.pollAndLog(ctx)
		case <-deadline:
			if err := p.FireDue(ctx); err != nil {
				p.logError("notification_log_failed", err)
			}
		}
	}
}

// PollOnce fetches live status and alert history concurrently. On failure the
// previous snapshot stays in place and the alert machine is not fed.
func (p *PollerService) PollOnce(ctx context.Context) error {
	var (
		status models.LiveStatus
		alerts []models.AlertRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		status, err = p.source.Live(gctx)
		if err != nil {
			return fmt.Errorf("fetch live status: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		alerts, err = p.source.Alerts(gctx)
		if err != nil {
			return fmt.Errorf("fetch alerts: %w", err)
		}
		return nil
	})

	now := p.now()
	if err := g.Wait(); err != nil {
		p.telemetry.recordError(err, now)
		return err
	}

	p.telemetry.publish(status, alerts, now)
	evs, err := p.notifier.Observe(ctx, now, status.CurrentMaxTemp)
	p.logTransitions(evs, "max_temp", status.CurrentMaxTemp)
	if err != nil {
		return fmt.Errorf("log notification transitions: %w", err)
	}
	return nil
}

// FireDue runs the notifier's scheduled transitions that are due now.
func (p *PollerService) FireDue(ctx context.Context) error {
	evs, err := p.notifier.Advance(ctx, p.now())
	p.logTransitions(evs)
	return err
}

func (p *PollerService) logTransitions(evs []models.NotificationEvent, kv ...any) {
	for _, e := range evs {
		fields := append([]any{"message", e.Message, "occurred_at", e.OccurredAt}, kv...)
		p.logInfo("notification_"+strings.ToLower(string(e.Phase)), fields...)
	}
}

func (p *PollerService) pollAndLog(ctx context.Context) {
	if err := p.PollOnce(ctx); err != nil {
		p.logError("poll_failed", err)
	}
}

// deadlineTimer returns a channel that fires at the notifier's next
// deadline, or nil (never fires) when nothing is scheduled.
func (p *PollerService) deadlineTimer() (<-chan time.Time, func()) {
	at, ok := p.notifier.NextDeadline()
	if !ok {
		return nil, func() {}
	}
	timer := time.NewTimer(time.Until(at))
	return timer.C, func() { timer.Stop() }
}

func (p *PollerService) logInfo(msg string, kv ...any) {
	if p.log != nil {
		p.log.Infow(msg, kv...)
	}
}

func (p *PollerService) logError(msg string, err error) {
	if p.log != nil {
		p.log.Errorw(msg, "err", err)
	}
}
