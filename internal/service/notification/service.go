package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/pushworks/push-scheduler/internal/dispatcher"
	"github.com/pushworks/push-scheduler/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

// ErrNoDevices is returned by SendNow when the target resolves to an empty
// recipient set.
var ErrNoDevices = errors.New("no registered devices for target")

type notificationRepository interface {
	CreateNotification(context.Context, model.ScheduledNotification) (uuid.UUID, error)
	GetNotificationByID(context.Context, uuid.UUID) (model.ScheduledNotification, error)
	GetNotificationStatusByID(context.Context, uuid.UUID) (string, error)
	CancelNotification(context.Context, uuid.UUID) error
	GetAllNotifications(context.Context) ([]model.ScheduledNotification, error)
}

type deviceRepository interface {
	RegisterToken(context.Context, model.DeviceToken) (uuid.UUID, error)
	DeleteByID(context.Context, uuid.UUID) error
	TokensForAll(context.Context) ([]string, error)
	TokensForOwner(context.Context, string) ([]string, error)
}

type historyRepository interface {
	Append(context.Context, model.DispatchRecord) (uuid.UUID, error)
	ListHistory(context.Context, int) ([]model.DispatchRecord, error)
}

type multicastDispatcher interface {
	Dispatch(ctx context.Context, tokens []string, content model.NotificationContent) dispatcher.Outcome
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service orchestrates notification scheduling, immediate dispatch and
// device registration for the HTTP surface.
type Service struct {
	repo    notificationRepository
	devices deviceRepository
	history historyRepository
	sender  multicastDispatcher
	cache   cache
}

func NewService(
	repo notificationRepository,
	devices deviceRepository,
	history historyRepository,
	sender multicastDispatcher,
	cache cache,
) *Service {
	return &Service{repo: repo, devices: devices, history: history, sender: sender, cache: cache}
}

// CreateNotification persists a new pending notification and caches its
// status for cheap polling.
func (s *Service) CreateNotification(ctx context.Context, strategy retry.Strategy, n model.ScheduledNotification) (uuid.UUID, error) {
	id, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create notification: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), n.Status); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}

	return id, nil
}

// GetNotificationStatusByID reads the status from cache, falling back to the
// repository on a miss.
func (s *Service) GetNotificationStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status from cache")
	}

	if status == "" || err != nil {
		status, err = s.repo.GetNotificationStatusByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get notification status: %w", err)
		}

		if err := s.cache.SetWithRetry(ctx, strategy, id.String(), status); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
		}
	}

	return status, nil
}

// GetNotificationByID returns the full notification record.
func (s *Service) GetNotificationByID(ctx context.Context, id uuid.UUID) (model.ScheduledNotification, error) {
	n, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return model.ScheduledNotification{}, fmt.Errorf("get notification: %w", err)
	}

	return n, nil
}

// GetAllNotifications returns every notification record.
func (s *Service) GetAllNotifications(ctx context.Context) ([]model.ScheduledNotification, error) {
	notifications, err := s.repo.GetAllNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all notifications: %w", err)
	}

	return notifications, nil
}

// CancelNotification cancels a pending notification and refreshes the cached
// status.
func (s *Service) CancelNotification(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	if err := s.repo.CancelNotification(ctx, id); err != nil {
		return fmt.Errorf("cancel notification: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), model.StatusCancelled); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}

	return nil
}

// SendNow dispatches content immediately to all devices (empty recipient) or
// to one owner's devices, bypassing the scheduled-notification table. Every
// call sends; callers control deduplication. Partial counts are returned
// even when an error is.
func (s *Service) SendNow(ctx context.Context, recipient string, content model.NotificationContent) (dispatcher.Outcome, error) {
	var (
		tokens []string
		err    error
	)
	if recipient == "" {
		tokens, err = s.devices.TokensForAll(ctx)
	} else {
		tokens, err = s.devices.TokensForOwner(ctx, recipient)
	}
	if err != nil {
		return dispatcher.Outcome{}, fmt.Errorf("fetch recipients: %w", err)
	}
	if len(tokens) == 0 {
		return dispatcher.Outcome{}, ErrNoDevices
	}

	out := s.sender.Dispatch(ctx, tokens, content)

	rec := model.DispatchRecord{
		Title:        content.Title,
		Body:         content.Body,
		Target:       model.TargetFor(recipient),
		SentAt:       time.Now(),
		TotalDevices: out.TotalDevices,
		SuccessCount: out.SuccessCount,
		FailureCount: out.FailureCount,
	}
	if _, err := s.history.Append(ctx, rec); err != nil {
		return out, fmt.Errorf("record dispatch history: %w", err)
	}

	return out, nil
}

// ListHistory returns the most recent dispatch records.
func (s *Service) ListHistory(ctx context.Context, limit int) ([]model.DispatchRecord, error) {
	records, err := s.history.ListHistory(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list dispatch history: %w", err)
	}

	return records, nil
}

// RegisterDevice upserts a device token.
func (s *Service) RegisterDevice(ctx context.Context, d model.DeviceToken) (uuid.UUID, error) {
	id, err := s.devices.RegisterToken(ctx, d)
	if err != nil {
		return uuid.Nil, fmt.Errorf("register device: %w", err)
	}

	return id, nil
}

// RemoveDevice deletes one device registration.
func (s *Service) RemoveDevice(ctx context.Context, id uuid.UUID) error {
	if err := s.devices.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("remove device: %w", err)
	}

	return nil
}
