package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/4imn/Sadeqi-backend/internal/config"
	"github.com/4imn/Sadeqi-backend/internal/domain"
	"github.com/4imn/Sadeqi-backend/internal/handler"
	"github.com/4imn/Sadeqi-backend/internal/health"
	"github.com/4imn/Sadeqi-backend/internal/infra/devicestore"
	"github.com/4imn/Sadeqi-backend/internal/infra/eventindex"
	"github.com/4imn/Sadeqi-backend/internal/infra/medicinestore"
	"github.com/4imn/Sadeqi-backend/internal/infra/prayercalc"
	"github.com/4imn/Sadeqi-backend/internal/infra/push"
	"github.com/4imn/Sadeqi-backend/internal/observability"
	"github.com/4imn/Sadeqi-backend/internal/observability/metrics"
	"github.com/4imn/Sadeqi-backend/internal/scheduler"
	"github.com/4imn/Sadeqi-backend/internal/service/medicine"
	"github.com/4imn/Sadeqi-backend/internal/service/notify"
	"github.com/4imn/Sadeqi-backend/internal/service/prayer"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "sadeqi-reminders"
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceName:  serviceName,
		Version:      Version,
		LogLevel:     cfg.LogLevel,
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	})
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())
	logger := obs.Logger()

	if err := cfg.Redis.Validate(); err != nil {
		slog.Error("redis configuration error", slog.String("error", err.Error()))
		return 1
	}
	if err := cfg.Postgres.Validate(); err != nil {
		slog.Error("postgres configuration error", slog.String("error", err.Error()))
		return 1
	}

	schedulerMetrics, err := metrics.NewSchedulerMetrics()
	if err != nil {
		slog.Error("failed to initialize scheduler metrics", slog.String("error", err.Error()))
		return 1
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN()), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect postgres",
			slog.String("event", "postgres.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	reminderStore := medicinestore.NewStore(db)
	deviceStore := devicestore.NewStore(db)
	scopeStore := devicestore.NewScopeStore(db, logger)
	for _, migrate := range []func(context.Context) error{
		reminderStore.Migrate,
		deviceStore.Migrate,
		scopeStore.Migrate,
	} {
		if err := migrate(ctx); err != nil {
			slog.Error("failed to run migrations", slog.String("error", err.Error()))
			return 1
		}
	}

	slog.Info("postgres connected",
		slog.String("host", cfg.Postgres.Host),
		slog.String("database", cfg.Postgres.Database),
	)

	var sender domain.PushSender
	if cfg.Push.Enabled() {
		sender, err = push.NewFCM(ctx, cfg.Push.CredentialsFile)
		if err != nil {
			slog.Error("failed to initialize FCM sender", slog.String("error", err.Error()))
			return 1
		}
		slog.Info("FCM sender initialized")
	} else {
		sender = push.NewNoopSender(logger)
		slog.Warn("FCM_CREDENTIALS_FILE not set, push delivery disabled")
	}

	prayerIndex := eventindex.NewRedis(redisClient, eventindex.DefaultPrayerKey)
	calcClient := prayercalc.NewClient(cfg.PrayerCalcURL)

	sendTimeout := time.Duration(cfg.Push.SendTimeoutSeconds) * time.Second
	dispatcher := notify.NewDispatcher(deviceStore, sender, sendTimeout, schedulerMetrics)

	recomputer := prayer.NewRecomputer(scopeStore, calcClient, prayerIndex, logger, schedulerMetrics)
	prayerPoller := prayer.NewPoller(prayerIndex, dispatcher, logger, schedulerMetrics, cfg.Scheduler.PollHalfWidth)

	medicineService := medicine.NewService(reminderStore)
	medicinePoller := medicine.NewPoller(medicineService, reminderStore, dispatcher, logger, schedulerMetrics)

	// Refresh today's schedule immediately so a restart mid-day does
	// not leave the index empty until the next midnight run.
	if _, err := recomputer.Run(ctx); err != nil {
		slog.Warn("initial schedule recompute failed", slog.String("error", err.Error()))
	}

	cronLoc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		slog.Error("invalid scheduler timezone",
			slog.String("timezone", cfg.Scheduler.Timezone),
			slog.String("error", err.Error()),
		)
		return 1
	}

	sched := scheduler.New(logger, cronLoc)
	jobs := []scheduler.Job{
		{
			Name: "daily-recompute",
			Spec: scheduler.DailyRecomputeSpec,
			Run: func(ctx context.Context) error {
				_, err := recomputer.Run(ctx)
				return err
			},
		},
		{
			Name: "prayer-poll",
			Spec: scheduler.PrayerPollSpec,
			Run: func(ctx context.Context) error {
				_, err := prayerPoller.Poll(ctx, time.Now())
				return err
			},
		},
		{
			Name: "medicine-poll",
			Spec: scheduler.MedicinePollSpec,
			Run: func(ctx context.Context) error {
				_, err := medicinePoller.Poll(ctx, time.Now())
				return err
			},
		},
	}
	for _, job := range jobs {
		if err := sched.Register(job); err != nil {
			slog.Error("failed to register scheduled job",
				slog.String("job", job.Name),
				slog.String("error", err.Error()),
			)
			return 1
		}
	}
	sched.Start()

	reminderHandler := handler.NewReminderHandler(medicineService, reminderStore)
	deviceHandler := handler.NewDeviceHandler(deviceStore)
	schedulerHandler := handler.NewSchedulerHandler(recomputer, prayerPoller, medicinePoller)

	r := gin.New()
	r.Use(gin.Recovery())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, db, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/devices", deviceHandler.HandleRegister)
		v1.POST("/reminders", reminderHandler.HandleCreate)
		v1.GET("/reminders", reminderHandler.HandleList)
		v1.GET("/reminders/:id", reminderHandler.HandleGet)
		v1.PUT("/reminders/:id", reminderHandler.HandleUpdate)
		v1.DELETE("/reminders/:id", reminderHandler.HandleDelete)
		v1.GET("/reminders/:id/next", reminderHandler.HandleNextFire)
	}

	internal := r.Group("/internal/v1")
	{
		internal.POST("/recompute", schedulerHandler.HandleRecompute)
		internal.POST("/poll", schedulerHandler.HandlePoll)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Duration("poll_half_width", cfg.Scheduler.PollHalfWidth),
			slog.String("scheduler_timezone", cfg.Scheduler.Timezone),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Scheduler.ShutdownTimeout)
		defer shutdownCancel()

		if err := sched.Stop(shutdownCtx); err != nil {
			slog.Warn("scheduler shutdown error", slog.String("error", err.Error()))
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
