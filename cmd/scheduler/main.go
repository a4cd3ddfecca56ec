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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	devicehandler "github.com/pushworks/push-scheduler/internal/api/handlers/device"
	notifhandler "github.com/pushworks/push-scheduler/internal/api/handlers/notification"
	"github.com/pushworks/push-scheduler/internal/api/router"
	"github.com/pushworks/push-scheduler/internal/api/server"
	"github.com/pushworks/push-scheduler/internal/config"
	"github.com/pushworks/push-scheduler/internal/dispatcher"
	devicerepo "github.com/pushworks/push-scheduler/internal/repository/device"
	historyrepo "github.com/pushworks/push-scheduler/internal/repository/history"
	notifrepo "github.com/pushworks/push-scheduler/internal/repository/notification"
	"github.com/pushworks/push-scheduler/internal/scheduler"
	notifsvc "github.com/pushworks/push-scheduler/internal/service/notification"
	"github.com/pushworks/push-scheduler/pkg/fcm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

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

	notificationRepo := notifrepo.NewRepository(db)
	deviceRepo := devicerepo.NewRepository(db)
	historyRepo := historyrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	transport, err := fcm.NewClient(ctx, cfg.FCM.CredentialsFile)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to init push transport")
	}

	sender := dispatcher.New(transport, deviceRepo)
	service := notifsvc.NewService(notificationRepo, deviceRepo, historyRepo, sender, rdb)

	sched := scheduler.New(notificationRepo, deviceRepo, sender, historyRepo, cfg.Scheduler.Interval)
	if err := sched.Start(ctx); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to start scheduler")
	}

	notificationHandler := notifhandler.NewHandler(service, val, cfg)
	deviceHandler := devicehandler.NewHandler(service, val)

	r := router.New(notificationHandler, deviceHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())

		if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Error().Err(err).Msg("metrics server stopped")
		}
	}()

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("stopping scheduler")
	sched.Stop()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}
}
