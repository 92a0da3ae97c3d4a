package schedule

import (
	"context"
	"time"

	"weather-collector/pkg/log"
	"weather-collector/pkg/redis"
)

// lockedCollectorScheduler wraps a scheduler backend in a distributed lock so
// only one collector instance runs the schedule at a time. The lock is held
// for the scheduler's whole lifetime via auto-refresh; losing it stops the
// schedule.
type lockedCollectorScheduler struct {
	inner       CollectorScheduler
	redisClient *redis.Client
	lockTTL     time.Duration
	refresh     time.Duration
	cancel      context.CancelFunc
}

var _ CollectorScheduler = (*lockedCollectorScheduler)(nil)

// WithDistributedLock decorates a scheduler with leader election backed by
// redis.
func WithDistributedLock(inner CollectorScheduler, redisClient *redis.Client, lockTTL time.Duration, refresh time.Duration) CollectorScheduler {
	return &lockedCollectorScheduler{
		inner:       inner,
		redisClient: redisClient,
		lockTTL:     lockTTL,
		refresh:     refresh,
	}
}

func (s *lockedCollectorScheduler) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	go func() {
		lock := redis.NewLock(s.redisClient, "collector_scheduler",
			redis.NewLockOptions().
				WithTTL(s.lockTTL).
				WithRefreshInterval(s.refresh).
				WithLockNamespace("weather_schedules"))

		if err := lock.Lock(runCtx); err != nil {
			log.Errorf("Failed to acquire scheduler lock, schedule will not start: %v", err)
			return
		}

		refreshErrChan := lock.AutoRefresh(runCtx)

		if err := s.inner.Start(runCtx); err != nil {
			log.Errorf("Failed to start scheduler under lock: %v", err)
			if unlockErr := lock.Unlock(context.Background()); unlockErr != nil {
				log.Errorf("Failed to release scheduler lock: %v", unlockErr)
			}
			return
		}

		log.Info("Scheduler started under distributed lock")

		err := <-refreshErrChan
		s.inner.Stop()

		if err != nil && runCtx.Err() == nil {
			log.Errorf("Scheduler stopped, lock refresh failed: %v", err)
			return
		}

		if unlockErr := lock.Unlock(context.Background()); unlockErr != nil {
			log.Errorf("Failed to release scheduler lock: %v", unlockErr)
		}
		log.Info("Scheduler stopped, lock released")
	}()

	return nil
}

func (s *lockedCollectorScheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}
