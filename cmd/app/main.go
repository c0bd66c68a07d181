package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deliverytracking/cmd"
	"deliverytracking/internal/adapters/out/rabbitmq"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(configs)
	redisClient := mustOpenRedis(ctx, configs)
	amqpClient := mustConnectBroker(ctx, configs, logger)
	defer func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		if amqpClient != nil {
			amqpClient.Close()
		}
	}()

	app, err := cmd.NewCompositionRoot(configs, logger, gormDB, redisClient, amqpClient)
	if err != nil {
		log.Fatalf("build composition root: %v", err)
	}
	if err := app.Migrate(ctx); err != nil {
		log.Fatalf("migrate analytics schema: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	config := cmd.Config{
		HTTPPort:           os.Getenv("HTTP_PORT"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          os.Getenv("DB_SSLMODE"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		AMQPURL:            os.Getenv("AMQP_URL"),
		AMQPExchange:       os.Getenv("AMQP_EXCHANGE"),
		SimulationSchedule: os.Getenv("SIMULATION_SCHEDULE"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
	}
	return config.WithDefaults()
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	if !configs.DatabaseEnabled() {
		return nil
	}
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	return gormDB
}

func mustOpenRedis(ctx context.Context, configs cmd.Config) *redis.Client {
	if !configs.RedisEnabled() {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("connect to redis: %v", err)
	}
	return client
}

func mustConnectBroker(ctx context.Context, configs cmd.Config, logger *slog.Logger) *rabbitmq.Client {
	if !configs.BrokerEnabled() {
		return nil
	}
	client, err := rabbitmq.Connect(ctx, configs.AMQPURL, configs.AMQPExchange, logger)
	if err != nil {
		log.Fatalf("connect to broker: %v", err)
	}
	return client
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	app.CreateHTTPServer().Register(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
