package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/pushworks/push-scheduler/internal/dispatcher"
	mocks "github.com/pushworks/push-scheduler/internal/mocks/scheduler"
	"github.com/pushworks/push-scheduler/internal/model"
)

type schedulerMocks struct {
	store   *mocks.MocknotificationStore
	devices *mocks.MocktokenSource
	sender  *mocks.MockmulticastDispatcher
	history *mocks.MockhistoryStore
}

func setupScheduler(t *testing.T, now time.Time) (*Scheduler, schedulerMocks) {
	ctrl := gomock.NewController(t)
	m := schedulerMocks{
		store:   mocks.NewMocknotificationStore(ctrl),
		devices: mocks.NewMocktokenSource(ctrl),
		sender:  mocks.NewMockmulticastDispatcher(ctrl),
		history: mocks.NewMockhistoryStore(ctrl),
	}

	s := New(m.store, m.devices, m.sender, m.history, time.Minute)
	s.now = func() time.Time { return now }

	return s, m
}

func TestTick_OneShotSuccess(t *testing.T) {
	now := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	s, m := setupScheduler(t, now)

	n := model.ScheduledNotification{
		ID:          uuid.New(),
		Content:     model.NotificationContent{Title: "hello", Body: "world"},
		ScheduledAt: now.Add(-time.Minute),
		Status:      model.StatusProcessing,
	}
	tokens := []string{"a", "b", "c"}
	out := dispatcher.Outcome{SuccessCount: 2, FailureCount: 1, TotalDevices: 3}

	m.store.EXPECT().ClaimDue(gomock.Any(), now).Return([]model.ScheduledNotification{n}, nil)
	m.devices.EXPECT().TokensForAll(gomock.Any()).Return(tokens, nil)
	m.sender.EXPECT().Dispatch(gomock.Any(), tokens, n.Content).Return(out)
	m.history.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec model.DispatchRecord) (uuid.UUID, error) {
			if rec.Target != model.TargetBroadcast || rec.SuccessCount != 2 || rec.NotificationID == nil || *rec.NotificationID != n.ID {
				t.Errorf("unexpected history record: %+v", rec)
			}
			return uuid.New(), nil
		})
	m.store.EXPECT().MarkSent(gomock.Any(), n.ID, 2, 1, 3).Return(nil)

	s.Tick(context.Background())
}

func TestTick_RecurringReschedules(t *testing.T) {
	now := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	s, m := setupScheduler(t, now)

	scheduledAt := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	n := model.ScheduledNotification{
		ID:          uuid.New(),
		Content:     model.NotificationContent{Title: "digest", Body: "daily digest"},
		Recipient:   "alice",
		ScheduledAt: scheduledAt,
		Status:      model.StatusProcessing,
		Recurrence:  &model.RecurrenceRule{Frequency: model.FrequencyDaily, TimeOfDay: "09:00"},
	}
	tokens := []string{"t1"}
	out := dispatcher.Outcome{SuccessCount: 1, TotalDevices: 1}
	next := time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC)

	m.store.EXPECT().ClaimDue(gomock.Any(), now).Return([]model.ScheduledNotification{n}, nil)
	m.devices.EXPECT().TokensForOwner(gomock.Any(), "alice").Return(tokens, nil)
	m.sender.EXPECT().Dispatch(gomock.Any(), tokens, n.Content).Return(out)
	m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	m.store.EXPECT().Reschedule(gomock.Any(), n.ID, next, 1, 0, 1).Return(nil)

	s.Tick(context.Background())
}

func TestTick_UnknownFrequencyFinishesAsOneShot(t *testing.T) {
	now := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	s, m := setupScheduler(t, now)

	n := model.ScheduledNotification{
		ID:          uuid.New(),
		Content:     model.NotificationContent{Title: "odd", Body: "rule"},
		ScheduledAt: now.Add(-time.Minute),
		Status:      model.StatusProcessing,
		Recurrence:  &model.RecurrenceRule{Frequency: "hourly"},
	}

	m.store.EXPECT().ClaimDue(gomock.Any(), now).Return([]model.ScheduledNotification{n}, nil)
	m.devices.EXPECT().TokensForAll(gomock.Any()).Return([]string{"t1"}, nil)
	m.sender.EXPECT().Dispatch(gomock.Any(), []string{"t1"}, n.Content).Return(dispatcher.Outcome{SuccessCount: 1, TotalDevices: 1})
	m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

	// The rule does not advance the clock, so the record must not loop.
	m.store.EXPECT().MarkSent(gomock.Any(), n.ID, 1, 0, 1).Return(nil)

	s.Tick(context.Background())
}

func TestTick_NoDevicesMarksFailed(t *testing.T) {
	now := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	s, m := setupScheduler(t, now)

	n := model.ScheduledNotification{
		ID:        uuid.New(),
		Content:   model.NotificationContent{Title: "t", Body: "b"},
		Recipient: "bob",
		Status:    model.StatusProcessing,
	}

	m.store.EXPECT().ClaimDue(gomock.Any(), now).Return([]model.ScheduledNotification{n}, nil)
	m.devices.EXPECT().TokensForOwner(gomock.Any(), "bob").Return(nil, nil)
	m.store.EXPECT().MarkFailed(gomock.Any(), n.ID, "no registered devices for target user:bob").Return(nil)

	s.Tick(context.Background())
}

func TestTick_HistoryAppendErrorMarksFailed(t *testing.T) {
	now := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	s, m := setupScheduler(t, now)

	n := model.ScheduledNotification{
		ID:      uuid.New(),
		Content: model.NotificationContent{Title: "t", Body: "b"},
		Status:  model.StatusProcessing,
	}

	m.store.EXPECT().ClaimDue(gomock.Any(), now).Return([]model.ScheduledNotification{n}, nil)
	m.devices.EXPECT().TokensForAll(gomock.Any()).Return([]string{"t1"}, nil)
	m.sender.EXPECT().Dispatch(gomock.Any(), []string{"t1"}, n.Content).Return(dispatcher.Outcome{SuccessCount: 1, TotalDevices: 1})
	m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("boom"))
	m.store.EXPECT().MarkFailed(gomock.Any(), n.ID, "record dispatch history: boom").Return(nil)

	s.Tick(context.Background())
}

func TestTick_RescheduleErrorReleases(t *testing.T) {
	now := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	s, m := setupScheduler(t, now)

	n := model.ScheduledNotification{
		ID:          uuid.New(),
		Content:     model.NotificationContent{Title: "t", Body: "b"},
		ScheduledAt: now.Add(-time.Minute),
		Status:      model.StatusProcessing,
		Recurrence:  &model.RecurrenceRule{Frequency: model.FrequencyDaily},
	}

	m.store.EXPECT().ClaimDue(gomock.Any(), now).Return([]model.ScheduledNotification{n}, nil)
	m.devices.EXPECT().TokensForAll(gomock.Any()).Return([]string{"t1"}, nil)
	m.sender.EXPECT().Dispatch(gomock.Any(), []string{"t1"}, n.Content).Return(dispatcher.Outcome{SuccessCount: 1, TotalDevices: 1})
	m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	m.store.EXPECT().Reschedule(gomock.Any(), n.ID, gomock.Any(), 1, 0, 1).Return(errors.New("db down"))
	m.store.EXPECT().Release(gomock.Any(), n.ID).Return(nil)

	s.Tick(context.Background())
}

func TestTick_OneFailureDoesNotBlockOthers(t *testing.T) {
	now := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	s, m := setupScheduler(t, now)

	broken := model.ScheduledNotification{
		ID:        uuid.New(),
		Content:   model.NotificationContent{Title: "t1", Body: "b1"},
		Recipient: "nobody",
		Status:    model.StatusProcessing,
	}
	healthy := model.ScheduledNotification{
		ID:      uuid.New(),
		Content: model.NotificationContent{Title: "t2", Body: "b2"},
		Status:  model.StatusProcessing,
	}

	m.store.EXPECT().ClaimDue(gomock.Any(), now).
		Return([]model.ScheduledNotification{broken, healthy}, nil)

	m.devices.EXPECT().TokensForOwner(gomock.Any(), "nobody").Return(nil, errors.New("db down"))
	m.store.EXPECT().MarkFailed(gomock.Any(), broken.ID, gomock.Any()).Return(nil)

	m.devices.EXPECT().TokensForAll(gomock.Any()).Return([]string{"t1"}, nil)
	m.sender.EXPECT().Dispatch(gomock.Any(), []string{"t1"}, healthy.Content).Return(dispatcher.Outcome{SuccessCount: 1, TotalDevices: 1})
	m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	m.store.EXPECT().MarkSent(gomock.Any(), healthy.ID, 1, 0, 1).Return(nil)

	s.Tick(context.Background())
}

func TestTick_ClaimErrorDoesNothing(t *testing.T) {
	now := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	s, m := setupScheduler(t, now)

	m.store.EXPECT().ClaimDue(gomock.Any(), now).Return(nil, errors.New("db down"))

	s.Tick(context.Background())
}
