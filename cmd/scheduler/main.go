package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	locationhandler "github.com/smartsched/reminder-scheduler/internal/api/handlers/location"
	reminderhandler "github.com/smartsched/reminder-scheduler/internal/api/handlers/reminder"
	"github.com/smartsched/reminder-scheduler/internal/api/router"
	"github.com/smartsched/reminder-scheduler/internal/api/server"
	"github.com/smartsched/reminder-scheduler/internal/config"
	"github.com/smartsched/reminder-scheduler/internal/holiday"
	"github.com/smartsched/reminder-scheduler/internal/notify"
	deliverymsg "github.com/smartsched/reminder-scheduler/internal/rabbitmq/handlers/delivery"
	"github.com/smartsched/reminder-scheduler/internal/rabbitmq/queue"
	reminderrepo "github.com/smartsched/reminder-scheduler/internal/repository/reminder"
	deliverysvc "github.com/smartsched/reminder-scheduler/internal/service/delivery"
	"github.com/smartsched/reminder-scheduler/internal/service/proximity"
	"github.com/smartsched/reminder-scheduler/internal/service/scheduler"
	"github.com/smartsched/reminder-scheduler/internal/worker"
	"github.com/smartsched/reminder-scheduler/pkg/email"
	"github.com/smartsched/reminder-scheduler/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDeliveryQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create delivery queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	repo := reminderrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	telegramClient := telegram.NewClient(cfg.Telegram.Token)

	notifiers := map[string]deliverysvc.Notifier{
		"email":    emailClient,
		"telegram": telegramClient,
	}

	deliveryService := deliverysvc.NewService(notifiers, cfg.Delivery.Recipients, rdb)
	center := notify.NewCenter(queue.Deliverer{Queue: q, Strategy: cfg.Retry}, rdb, cfg.Retry)

	schedulerService := scheduler.NewService(repo, center)
	proximityService := proximity.NewService(repo, center)

	messageHandler := deliverymsg.NewHandler(deliveryService)
	deliverer := worker.NewDeliverer(q, messageHandler, deliveryService)

	go deliverer.Run(ctx, cfg.Retry, cfg.Workers.Count)
	go center.Run(ctx, cfg.Dispatch.Interval)

	// Armed requests are not persisted, so rebuild them from repository
	// state before serving traffic.
	if err := schedulerService.RestoreSchedules(ctx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to restore reminder schedules")
	}

	if cfg.Holiday.Enabled {
		holidayClient := holiday.NewClient(cfg.Holiday.BaseURL, cfg.Holiday.Timeout)
		checker := holiday.NewChecker(holidayClient, center, cfg.Holiday.CountryCode)
		go checker.CheckToday(ctx)
	}

	remHandler := reminderhandler.NewHandler(schedulerService, val)
	locHandler := locationhandler.NewHandler(proximityService, center, val)

	r := router.New(remHandler, locHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
