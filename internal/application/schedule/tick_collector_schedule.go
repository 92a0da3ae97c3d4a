package schedule

import (
	"context"

	"weather-collector/pkg/sched"
)

// tickCollectorScheduler runs the collector jobs on the in-process tick loop.
type tickCollectorScheduler struct {
	scheduler *sched.TickScheduler
	cancel    context.CancelFunc
	done      chan struct{}
}

var _ CollectorScheduler = (*tickCollectorScheduler)(nil)

func newTickCollectorScheduler(jobs *CollectorJobs, config *ScheduleConfig) *tickCollectorScheduler {
	scheduler := sched.NewTickScheduler()

	// Registration order decides run order when jobs share a slot: collect
	// before forward before vacuum.
	scheduler.AddHourlyJob("collect-weather", config.CollectMinutes, jobs.runCollect)
	scheduler.AddHourlyJob("forward-weather", config.ForwardMinutes, jobs.runForward)
	scheduler.AddHourlyJob("vacuum-responses", cleanupMinutes(config.CleanupEveryMinutes), jobs.runVacuum)

	return &tickCollectorScheduler{scheduler: scheduler}
}

func (s *tickCollectorScheduler) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		_ = s.scheduler.Start(runCtx)
	}()

	return nil
}

func (s *tickCollectorScheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}
