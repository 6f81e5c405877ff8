package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/cleaning-rotation-bot/internal/config"
	"github.com/diegoclair/cleaning-rotation-bot/internal/database"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/schedule"
	"github.com/diegoclair/cleaning-rotation-bot/internal/domain/service"
	"github.com/diegoclair/cleaning-rotation-bot/internal/handlers"
	"github.com/diegoclair/cleaning-rotation-bot/internal/logger"
	"github.com/diegoclair/cleaning-rotation-bot/internal/metrics"
	"github.com/diegoclair/cleaning-rotation-bot/internal/mirror"
	"github.com/diegoclair/cleaning-rotation-bot/internal/notification"
	"github.com/diegoclair/cleaning-rotation-bot/internal/tips"
	"github.com/diegoclair/cleaning-rotation-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("bot stopped with an error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return err
	}

	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "")
	slackClient := slack.New(cfg.SlackBotToken)

	collab := service.Collaborators{
		Notifier: notification.NewSlackNotifier(slackClient, cfg.SlackChannelID, collector, log),
		Tips:     tips.NewOpenAITips(cfg.OpenAIAPIKey, cfg.OpenAIModel, log),
		Metrics:  collector,
	}

	if cfg.RedisAddr != "" {
		client := mirror.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer client.Close()

		m := mirror.New(client, cfg.RedisKeyPrefix, collector, log)
		if err := m.Ping(ctx); err != nil {
			log.Warn("redis is not reachable, weekly records will only be kept locally", zap.Error(err))
		} else {
			collab.Mirror = m
			log.Info("mirroring weekly records to redis", zap.String("addr", cfg.RedisAddr))
		}
	}

	gen := schedule.NewGenerator(loc, time.Now)
	svc := service.NewInstance(database.NewInstance(db), gen, collab, service.Defaults{
		CycleStartDate:   cfg.CycleStartDate,
		NotificationTime: cfg.NotificationTime,
	}, log)

	if err := svc.Duty.Bootstrap(ctx); err != nil {
		return err
	}

	if err := svc.Scheduler.Start(); err != nil {
		return err
	}
	defer svc.Scheduler.Stop()

	go func() {
		if err := svc.Duty.Sync(ctx); err != nil {
			log.Error("weekly record sync stopped", zap.Error(err))
		}
	}()

	router := handlers.NewRouter(handlers.RouterConfig{
		Slack:          handlers.New(svc.Duty, cfg.SlackSigningSecret, collector, log),
		API:            handlers.NewAPIHandler(svc.Duty, loc, log),
		Metrics:        collector,
		Gatherer:       prometheus.DefaultGatherer,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", cfg.Port), zap.String("timezone", loc.String()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
