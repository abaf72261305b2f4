package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	kafkabroker "github.com/logtide/logtide/internal/broker/kafka"
	"github.com/logtide/logtide/internal/config"
	httpv1 "github.com/logtide/logtide/internal/controller/http/v1"
	"github.com/logtide/logtide/internal/controller/queue"
	"github.com/logtide/logtide/internal/metrics"
	"github.com/logtide/logtide/internal/repo"
	"github.com/logtide/logtide/internal/service"
	errorsUtils "github.com/logtide/logtide/pkg/errors"
	"github.com/logtide/logtide/pkg/httpserver"
	"github.com/logtide/logtide/pkg/logger"
	"github.com/logtide/logtide/pkg/postgres"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config

	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Reference zone for bucket truncation
	bucketZone, err := time.LoadLocation(cfg.Aggregation.BucketTimezone)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	log.Infof("Bucket timezone: %s", bucketZone)

	// Migrations
	Migrate(cfg.PG.URL)

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg)

	// Alert notifications producer
	var alertProducer *kafkabroker.Producer
	if cfg.Broker.Enabled {
		alertProducer = kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Broker.Brokers,
			Topic:   cfg.Broker.AlertsTopic,
		})
	}

	// Services
	metricsCnt := metrics.New()
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Counters:       metricsCnt,
		AlertThreshold: cfg.Aggregation.AlertThreshold,
		BucketZone:     bucketZone,
	}
	if alertProducer != nil {
		deps.BrokerProducer = alertProducer
	}
	services := service.NewServices(deps)

	// API server
	log.Infof("Starting API server...")
	log.Debugf("API server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	httpv1.RegisterRoutes(apiHandler, services, metricsCnt, bucketZone)
	apiServer := httpserver.New(apiHandler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Metrics server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Queue consumer
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()

	var logConsumer *kafkabroker.Consumer
	consumerNotify := make(chan error, 1)
	if cfg.Broker.Enabled {
		log.Infof("Starting queue consumer on topic %s...", cfg.Broker.LogsTopic)
		logConsumer = kafkabroker.NewConsumer(kafkabroker.ConsumerConfig{
			Brokers: cfg.Broker.Brokers,
			Topic:   cfg.Broker.LogsTopic,
			GroupID: cfg.Broker.GroupID,
		})
		handler := queue.NewLogConsumer(services.Ingest, bucketZone)
		go func() {
			consumerNotify <- logConsumer.Run(consumerCtx, handler.Handle)
		}()
	}

	log.Info("Configuring graceful shutdown...")

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info(errorsUtils.WrapPathErr(errors.New(s.String())))
	case err := <-apiServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-consumerNotify:
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	shutdownApp(apiServer, metricsServer, stopConsumer, logConsumer, alertProducer)
}

func shutdownApp(apiServer, metricsServer *httpserver.Server, stopConsumer context.CancelFunc, consumer *kafkabroker.Consumer, producer *kafkabroker.Producer) {
	log.Info("Shutting down...")

	if err := apiServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}

	stopConsumer()
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
}
