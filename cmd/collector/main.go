package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"weather-collector/configs"
	"weather-collector/internal/application/schedule"
	"weather-collector/internal/domain/entity"
	apigw "weather-collector/internal/domain/gateway/api"
	dbgw "weather-collector/internal/domain/gateway/db"
	queuegw "weather-collector/internal/domain/gateway/queue"
	"weather-collector/internal/domain/usecase/collect"
	"weather-collector/internal/domain/usecase/forward"
	"weather-collector/internal/domain/usecase/vacuum"
	"weather-collector/internal/infra/aws"
	"weather-collector/internal/infra/database/gorm"
	"weather-collector/pkg/http"
	"weather-collector/pkg/log"
	"weather-collector/pkg/msg"
	"weather-collector/pkg/redis"
	"weather-collector/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))
	env := configs.Load()
	log.Infof("Starting %s collector", env.ApplicationName)

	// Init infra
	dbConn, err := gorm.NewDatabase(&entity.CurrentWeatherResponse{}, &entity.ForecastResponse{})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var redisClient *redis.Client
	if resource.GetBool("app.redis.enabled") {
		redisClient = redis.NewClient(redis.NewRedisConfig().
			WithHost(resource.GetString("app.redis.host")).
			WithPort(resource.GetInt("app.redis.port")).
			WithPassword(resource.GetString("app.redis.password")).
			WithDatabase(resource.GetInt("app.redis.database")))
		defer func() { _ = redisClient.Close() }()
	}

	// Init Gateways
	rawGateway := dbgw.NewGormRawResponseGateway(dbConn)

	weatherClientOptions := http.ClientOptions{Logger: apigw.NewHTTPLogger()}
	if redisClient != nil {
		weatherClientOptions.Cache = redis.NewCache(redisClient, redis.NewCacheOptions().
			WithCacheName("weatherapi").
			WithTTL(resource.GetDuration("app.redis.cache-ttl")))
	}
	weatherGateway := apigw.NewWeatherAPIGateway(
		resource.GetString("app.weatherapi.url"),
		resource.GetString("app.weatherapi.key"),
		weatherClientOptions,
	)
	centralGateway, err := newCentralGateway()
	if err != nil {
		log.Fatalf("Failed to initialize central API gateway: %v", err)
	}

	// Init UseCases
	collectUseCase := collect.NewCollectUseCase(
		resource.GetString("app.weatherapi.location"),
		resource.GetInt("app.weatherapi.forecast-days"),
		weatherGateway,
		rawGateway,
	)
	forwardUseCase := forward.NewForwardUseCase(rawGateway, centralGateway)
	vacuumUseCase := vacuum.NewVacuumUseCase(rawGateway)

	// Init Schedule
	jobs := &schedule.CollectorJobs{
		Collect: collectUseCase,
		Forward: forwardUseCase,
		Vacuum:  vacuumUseCase,
	}
	scheduler, err := schedule.NewCollectorScheduler(jobs, schedule.LoadScheduleConfig())
	if err != nil {
		log.Fatalf("Failed to build scheduler: %v", err)
	}

	if redisClient != nil && resource.GetBool("app.scheduler.lock.enabled") {
		scheduler = schedule.WithDistributedLock(scheduler, redisClient,
			time.Duration(resource.GetInt("app.scheduler.lock.ttl-seconds"))*time.Second,
			time.Duration(resource.GetInt("app.scheduler.lock.refresh-seconds"))*time.Second,
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := scheduler.Start(ctx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	log.Info(msg.GetMessage("app.started"))

	<-ctx.Done()
	log.Info("Shutdown signal received, stopping scheduler")
	scheduler.Stop()
}

// newCentralGateway picks the forwarding transport. The default is a direct
// HTTP POST to the central API; "queue" hands envelopes to SQS and leaves the
// ingestion to the central API's queue worker.
func newCentralGateway() (apigw.CentralAPIGateway, error) {
	transport := resource.GetString("app.central.transport")
	if transport != "queue" {
		return apigw.NewCentralAPIGateway(
			resource.GetString("app.central.url"),
			http.ClientOptions{Logger: apigw.NewHTTPLogger()},
		), nil
	}

	awsConfig, err := aws.NewConfig(context.Background())
	if err != nil {
		return nil, err
	}
	sender := aws.NewSQSSenderAdapter(aws.NewSqsClient(awsConfig))
	return queuegw.NewCentralQueueGateway(sender, resource.GetString("app.central.queue-name")), nil
}
