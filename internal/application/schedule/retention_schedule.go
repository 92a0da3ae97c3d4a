package schedule

import (
	"time"

	"weather-collector/internal/domain/gateway/db"
	"weather-collector/pkg/log"
	"weather-collector/pkg/resource"

	"github.com/robfig/cron/v3"
)

// RetentionScheduler trims the central database's raw payload copies after
// the configured retention window.
type RetentionScheduler struct {
	cron          *cron.Cron
	dbGateway     db.WeatherDBGateway
	retentionDays int
}

func NewRetentionScheduler(dbGateway db.WeatherDBGateway) *RetentionScheduler {
	return &RetentionScheduler{
		cron:          cron.New(),
		dbGateway:     dbGateway,
		retentionDays: resource.GetInt("app.retention.days"),
	}
}

// InitRetentionScheduleTasks initializes the raw copy cleanup task
func (scheduler *RetentionScheduler) InitRetentionScheduleTasks() {
	_, err := scheduler.cron.AddFunc(resource.GetString("app.retention.cron"), scheduler.ClearExpiredRawCopies)

	if err != nil {
		panic(err)
	}

	scheduler.cron.Start()
}

func (scheduler *RetentionScheduler) ClearExpiredRawCopies() {
	if scheduler.retentionDays <= 0 {
		log.Debug("Raw copy retention disabled, skipping cleanup")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -scheduler.retentionDays)
	log.Infof("Clearing raw payload copies older than %s", cutoff.Format(time.RFC3339))

	deleted, err := scheduler.dbGateway.DeleteRawCopiesBefore(cutoff)
	if err != nil {
		log.Errorf("Error clearing expired raw payload copies: %v", err)
		return
	}

	log.Infof("Cleared %d expired raw payload cop(ies)", deleted)
}

// Stop gracefully stops the scheduler
func (scheduler *RetentionScheduler) Stop() {
	if scheduler.cron != nil {
		ctx := scheduler.cron.Stop()
		<-ctx.Done()
	}
}
