package schedule

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"weather-collector/pkg/log"

	"github.com/go-co-op/gocron/v2"
)

// cronCollectorScheduler runs the collector jobs on cron expressions derived
// from the configured minute offsets.
type cronCollectorScheduler struct {
	scheduler gocron.Scheduler
	jobs      *CollectorJobs
	config    *ScheduleConfig
}

var _ CollectorScheduler = (*cronCollectorScheduler)(nil)

func newCronCollectorScheduler(jobs *CollectorJobs, config *ScheduleConfig) (*cronCollectorScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create cron scheduler: %w", err)
	}

	return &cronCollectorScheduler{
		scheduler: scheduler,
		jobs:      jobs,
		config:    config,
	}, nil
}

func (s *cronCollectorScheduler) Start(ctx context.Context) error {
	tasks := []struct {
		name string
		expr string
		fn   func() error
	}{
		{"collect-weather", minutesToCron(s.config.CollectMinutes), s.jobs.runCollect},
		{"forward-weather", minutesToCron(s.config.ForwardMinutes), s.jobs.runForward},
		{"vacuum-responses", fmt.Sprintf("*/%d * * * *", s.config.CleanupEveryMinutes), s.jobs.runVacuum},
	}

	for _, task := range tasks {
		fn := task.fn
		name := task.name
		_, err := s.scheduler.NewJob(
			gocron.CronJob(task.expr, false),
			gocron.NewTask(func() {
				defer func() {
					if r := recover(); r != nil {
						log.Errorf("Job '%s' panicked: %v", name, r)
					}
				}()
				// Job errors are already logged by the job body.
				_ = fn()
			}),
		)
		if err != nil {
			return fmt.Errorf("failed to schedule job '%s': %w", task.name, err)
		}
		log.Infof("Scheduled job '%s' with cron expression '%s'", task.name, task.expr)
	}

	s.scheduler.Start()
	return nil
}

func (s *cronCollectorScheduler) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		log.Errorf("Error shutting down cron scheduler: %v", err)
	}
}

// minutesToCron turns minute offsets into a standard five-field expression.
func minutesToCron(minutes []int) string {
	parts := make([]string, len(minutes))
	for i, m := range minutes {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, ",") + " * * * *"
}
