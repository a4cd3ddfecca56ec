// Package scheduler drives the notification state machine off a fixed
// interval poll.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/zlog"

	"github.com/pushworks/push-scheduler/internal/dispatcher"
	"github.com/pushworks/push-scheduler/internal/metrics"
	"github.com/pushworks/push-scheduler/internal/model"
	"github.com/pushworks/push-scheduler/internal/recurrence"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock.go -package=mocks

type notificationStore interface {
	ClaimDue(ctx context.Context, now time.Time) ([]model.ScheduledNotification, error)
	MarkSent(ctx context.Context, id uuid.UUID, success, failure, total int) error
	Reschedule(ctx context.Context, id uuid.UUID, next time.Time, success, failure, total int) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	Release(ctx context.Context, id uuid.UUID) error
}

type tokenSource interface {
	TokensForAll(ctx context.Context) ([]string, error)
	TokensForOwner(ctx context.Context, owner string) ([]string, error)
}

type multicastDispatcher interface {
	Dispatch(ctx context.Context, tokens []string, content model.NotificationContent) dispatcher.Outcome
}

type historyStore interface {
	Append(ctx context.Context, rec model.DispatchRecord) (uuid.UUID, error)
}

// Scheduler polls the notification store for due records and walks each one
// through fetch-recipients, dispatch, history and its end state.
type Scheduler struct {
	store    notificationStore
	devices  tokenSource
	sender   multicastDispatcher
	history  historyStore
	interval time.Duration
	now      func() time.Time

	cron *cron.Cron
}

// New creates a scheduler polling at the given interval (default one minute).
func New(store notificationStore, devices tokenSource, sender multicastDispatcher, history historyStore, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}

	return &Scheduler{
		store:    store,
		devices:  devices,
		sender:   sender,
		history:  history,
		interval: interval,
		now:      time.Now,
	}
}

// Start begins polling in the background. A tick that outlives the interval
// is not run concurrently with the next one: the claim query already keeps a
// slow dispatch from being picked up twice, and SkipIfStillRunning keeps the
// ticks themselves serialized.
func (s *Scheduler) Start(ctx context.Context) error {
	logger := cron.PrintfLogger(&zlog.Logger)
	c := cron.New(cron.WithChain(
		cron.Recover(logger),
		cron.SkipIfStillRunning(logger),
	))

	_, err := c.AddFunc(fmt.Sprintf("@every %s", s.interval), func() { s.Tick(ctx) })
	if err != nil {
		return fmt.Errorf("register scheduler job: %w", err)
	}

	c.Start()
	s.cron = c

	zlog.Logger.Info().Dur("interval", s.interval).Msg("scheduler started")
	return nil
}

// Stop halts polling and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Tick claims every due notification and processes each independently: a
// failure in one record never blocks the others.
func (s *Scheduler) Tick(ctx context.Context) {
	metrics.SchedulerTicks.Inc()

	due, err := s.store.ClaimDue(ctx, s.now())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to claim due notifications")
		return
	}
	if len(due) == 0 {
		return
	}

	metrics.ClaimedNotifications.Add(float64(len(due)))
	zlog.Logger.Info().Int("count", len(due)).Msg("processing due notifications")

	var wg sync.WaitGroup
	wg.Add(len(due))
	for _, n := range due {
		go func(n model.ScheduledNotification) {
			defer wg.Done()
			s.process(ctx, n)
		}(n)
	}
	wg.Wait()
}

func (s *Scheduler) process(ctx context.Context, n model.ScheduledNotification) {
	tokens, err := s.recipients(ctx, n)
	if err != nil {
		s.fail(ctx, n.ID, fmt.Sprintf("fetch recipients: %v", err))
		return
	}

	// An empty recipient set still counts as processed, otherwise the record
	// would be re-claimed on every tick.
	if len(tokens) == 0 {
		s.fail(ctx, n.ID, "no registered devices for target "+model.TargetFor(n.Recipient))
		return
	}

	out := s.sender.Dispatch(ctx, tokens, n.Content)

	rec := model.DispatchRecord{
		Title:          n.Content.Title,
		Body:           n.Content.Body,
		Target:         model.TargetFor(n.Recipient),
		SentAt:         s.now(),
		TotalDevices:   out.TotalDevices,
		SuccessCount:   out.SuccessCount,
		FailureCount:   out.FailureCount,
		NotificationID: &n.ID,
	}
	if _, err := s.history.Append(ctx, rec); err != nil {
		s.fail(ctx, n.ID, fmt.Sprintf("record dispatch history: %v", err))
		return
	}

	if n.Recurrence != nil {
		next := recurrence.Next(n.ScheduledAt, *n.Recurrence)
		if next.After(n.ScheduledAt) {
			if err := s.store.Reschedule(ctx, n.ID, next, out.SuccessCount, out.FailureCount, out.TotalDevices); err != nil {
				zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to reschedule notification")
				s.release(ctx, n.ID)
				return
			}

			metrics.NotificationsDispatched.WithLabelValues(model.StatusPending).Inc()
			return
		}

		// A rule that does not advance the clock would re-fire on every
		// tick; finish the record as one-shot instead.
		zlog.Logger.Warn().
			Str("id", n.ID.String()).
			Str("frequency", n.Recurrence.Frequency).
			Msg("recurrence rule did not advance schedule, finishing as one-shot")
	}

	if err := s.store.MarkSent(ctx, n.ID, out.SuccessCount, out.FailureCount, out.TotalDevices); err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to mark notification sent")
		s.release(ctx, n.ID)
		return
	}

	metrics.NotificationsDispatched.WithLabelValues(model.StatusSent).Inc()
}

func (s *Scheduler) recipients(ctx context.Context, n model.ScheduledNotification) ([]string, error) {
	if n.Recipient == "" {
		return s.devices.TokensForAll(ctx)
	}

	return s.devices.TokensForOwner(ctx, n.Recipient)
}

func (s *Scheduler) fail(ctx context.Context, id uuid.UUID, reason string) {
	zlog.Logger.Warn().Str("id", id.String()).Str("reason", reason).Msg("notification failed")

	if err := s.store.MarkFailed(ctx, id, reason); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark notification failed")
		s.release(ctx, id)
		return
	}

	metrics.NotificationsDispatched.WithLabelValues(model.StatusFailed).Inc()
}

// release returns a claimed record to pending so the next tick retries it.
// At-least-once is preferred over silent loss, so a duplicate send after a
// persistence failure is accepted.
func (s *Scheduler) release(ctx context.Context, id uuid.UUID) {
	if err := s.store.Release(ctx, id); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to release claimed notification")
	}
}
