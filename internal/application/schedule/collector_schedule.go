package schedule

import (
	"context"
	"fmt"

	"weather-collector/internal/domain/usecase/collect"
	"weather-collector/internal/domain/usecase/forward"
	"weather-collector/internal/domain/usecase/vacuum"
	"weather-collector/pkg/log"
	"weather-collector/pkg/resource"
	"weather-collector/pkg/util/numberutils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CollectorScheduler drives the collector's recurring jobs. Both backends
// honor the same contract: jobs fire at fixed minute offsets of every hour,
// a failing job is logged and retried at its next slot, and Stop waits for
// the backend to shut down.
type CollectorScheduler interface {
	Start(ctx context.Context) error
	Stop()
}

// CollectorJobs groups the use cases the schedule drives.
type CollectorJobs struct {
	Collect collect.UseCase
	Forward forward.UseCase
	Vacuum  vacuum.UseCase
}

// ScheduleConfig holds the minute-of-hour offsets for each job.
type ScheduleConfig struct {
	CollectMinutes      []int
	ForwardMinutes      []int
	CleanupEveryMinutes int
}

// LoadScheduleConfig reads the schedule offsets from the application
// properties, falling back to the standard collection cadence.
func LoadScheduleConfig() *ScheduleConfig {
	config := &ScheduleConfig{
		CollectMinutes:      resource.GetIntSlice("app.scheduler.collect-minutes"),
		ForwardMinutes:      resource.GetIntSlice("app.scheduler.forward-minutes"),
		CleanupEveryMinutes: resource.GetInt("app.scheduler.cleanup-every-minutes"),
	}

	if len(config.CollectMinutes) == 0 {
		config.CollectMinutes = []int{0, 15, 30, 45}
	}
	if len(config.ForwardMinutes) == 0 {
		config.ForwardMinutes = []int{0, 20, 40}
	}
	if !numberutils.IsIntPositive(config.CleanupEveryMinutes) {
		config.CleanupEveryMinutes = 5
	}

	return config
}

// NewCollectorScheduler builds the scheduler backend selected by
// app.scheduler.backend. The cron backend is the default; the tick backend is
// an equivalent implementation kept selectable for environments without a
// cron-capable runtime.
func NewCollectorScheduler(jobs *CollectorJobs, config *ScheduleConfig) (CollectorScheduler, error) {
	backend := resource.GetString("app.scheduler.backend")

	switch backend {
	case "tick":
		return newTickCollectorScheduler(jobs, config), nil
	case "", "cron":
		return newCronCollectorScheduler(jobs, config)
	default:
		return nil, fmt.Errorf("unknown scheduler backend '%s'", backend)
	}
}

// Job bodies shared by both backends. Each run carries a request id so log
// lines from one firing can be correlated.

func (jobs *CollectorJobs) runCollect() error {
	requestID := uuid.New().String()
	log.Info("Collection job triggered", zap.String("request_id", requestID))

	if err := jobs.Collect.CollectCurrentWeather(); err != nil {
		log.Error("Current weather collection failed", zap.String("request_id", requestID), zap.Error(err))
		return err
	}

	if err := jobs.Collect.CollectForecast(); err != nil {
		log.Error("Forecast collection failed", zap.String("request_id", requestID), zap.Error(err))
		return err
	}

	log.Info("Collection job completed", zap.String("request_id", requestID))
	return nil
}

func (jobs *CollectorJobs) runForward() error {
	requestID := uuid.New().String()
	log.Info("Forward job triggered", zap.String("request_id", requestID))

	report, err := jobs.Forward.ForwardPending()
	if err != nil {
		log.Error("Forward job failed", zap.String("request_id", requestID), zap.Error(err))
		return err
	}

	log.Info("Forward job completed",
		zap.String("request_id", requestID),
		zap.Int("attempted", report.Attempted),
		zap.Int("delivered", report.Delivered),
		zap.Int("conflicts", report.Conflicts),
		zap.Int("failed", report.Failed),
	)
	return nil
}

func (jobs *CollectorJobs) runVacuum() error {
	requestID := uuid.New().String()
	log.Info("Vacuum job triggered", zap.String("request_id", requestID))

	report, err := jobs.Vacuum.VacuumRetired()
	if err != nil {
		log.Error("Vacuum job failed", zap.String("request_id", requestID), zap.Error(err))
		return err
	}

	log.Info("Vacuum job completed",
		zap.String("request_id", requestID),
		zap.Int("deleted", report.Deleted()),
	)
	return nil
}

// cleanupMinutes expands an every-N-minutes cadence into minute offsets.
func cleanupMinutes(every int) []int {
	minutes := make([]int, 0, 60/every)
	for m := 0; m < 60; m += every {
		minutes = append(minutes, m)
	}
	return minutes
}
