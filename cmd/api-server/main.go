package main

import (
	"context"

	"weather-collector/configs"
	_ "weather-collector/docs"
	"weather-collector/internal/application/controller"
	"weather-collector/internal/application/middleware"
	"weather-collector/internal/application/processor"
	"weather-collector/internal/application/schedule"
	"weather-collector/internal/domain/entity"
	dbgw "weather-collector/internal/domain/gateway/db"
	"weather-collector/internal/domain/gateway/queue"
	"weather-collector/internal/domain/usecase/health"
	"weather-collector/internal/domain/usecase/ingest"
	"weather-collector/internal/infra/aws"
	"weather-collector/internal/infra/database/gorm"
	"weather-collector/pkg/log"
	"weather-collector/pkg/msg"
	"weather-collector/pkg/resource"
	"weather-collector/pkg/sqs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title Weather Collector Central API
// @version 1.0
// @description Ingestion API for weather payloads forwarded by collectors
// @BasePath /api/v1
func main() {
	log.Info(msg.GetMessage("app.start"))
	env := configs.Load()
	log.Infof("Starting %s central API", env.ApplicationName)

	// Init infra
	dbConn, err := gorm.NewDatabase(
		&entity.Location{},
		&entity.CurrentWeather{},
		&entity.WeatherCondition{},
		&entity.AirQuality{},
		&entity.CurrentWeatherJSON{},
		&entity.ForecastJSON{},
	)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	e := echo.New()
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init Gateways
	weatherDBGateway := dbgw.NewGormWeatherDBGateway(dbConn)
	healthDBGateway := dbgw.NewGormHealthDBGateway(dbConn)
	queueHealthGateway := queue.NewQueueHealthGateway()

	// Init UseCases
	ingestUseCase := ingest.NewIngestUseCase(weatherDBGateway)
	healthUseCase := health.NewHealthUseCase(healthDBGateway, queueHealthGateway)

	// Init Controllers
	healthController := controller.NewHealthController(api, healthUseCase)
	collectorController := controller.NewCollectorController(api, ingestUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	collectorController.InitCollectorRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	retentionScheduler := schedule.NewRetentionScheduler(weatherDBGateway)
	retentionScheduler.InitRetentionScheduleTasks()

	// Init queue ingestion channel
	if resource.GetBool("app.queue.enabled") {
		startQueueWorker(ingestUseCase, queueHealthGateway)
	}

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}

// startQueueWorker consumes weather payloads from the configured SQS queue in
// addition to the HTTP endpoint.
func startQueueWorker(ingestUseCase ingest.UseCase, healthGateway *queue.QueueHealthGateway) {
	ctx := context.Background()

	awsConfig, err := aws.NewConfig(ctx)
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}
	sqsClient := aws.NewSqsClient(awsConfig)

	queueName := resource.GetString("app.queue.name")
	weatherProcessor := processor.NewWeatherPayloadProcessor(ingestUseCase)

	worker, err := sqs.NewWorker(sqsClient, queueName, weatherProcessor, &sqs.WorkerConfig{
		MaxNumberOfMessages: resource.GetInt32("app.queue.max-messages"),
		WaitTimeSeconds:     resource.GetInt32("app.queue.wait-seconds"),
		PoolSize:            resource.GetInt("app.queue.pool-size"),
		LogLevel:            sqs.ErrorLevel,
	})
	if err != nil {
		log.Fatalf("Failed to create queue worker for '%s': %v", queueName, err)
	}

	healthGateway.RegisterWorker(queueName, worker)
	go worker.Start(ctx)
	log.Infof("Queue worker started for '%s'", queueName)
}
