package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-server/api"
	"github.com/carson-networks/finance-server/internal/auth"
	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("config.Validate")
		return
	}

	logger := logging.SetupLogging(cfg.Log.Level)
	logger.Info("finance-server starting")

	calendar, err := cfg.Calendar.Build()
	if err != nil {
		logger.WithError(err).Fatal("config.Calendar.Build")
		return
	}

	dbStorage, err := openStorage(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("openStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, cfg.Operator.Workers, cfg.Operator.QueueSize)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, calendar, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		httpRest := api.Rest{
			Logger:          logger,
			Port:            cfg.HTTP.Port,
			ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
			Service:         svc,
			Storage:         dbStorage,
			Tokens:          auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer),
			APIKey:          cfg.Auth.APIKey,
			Location:        calendar.Location,
		}
		return httpRest.Serve(ctx)
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("finance-server stopped")
		return
	}
	logger.Info("finance-server stopped")
}

func openStorage(cfg *config.Config, logger *logrus.Logger) (*storage.Storage, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Warn("using in-memory storage, data is lost on exit")
		return storage.NewMemoryStorage(), nil
	}

	store, err := storage.NewStorage(cfg.Postgres)
	if err != nil {
		return nil, err
	}
	if cfg.Storage.AutoMigrate {
		result, err := storage.RunMigrations(store.DB)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		logger.WithFields(logrus.Fields{
			"preMigrationVersion":  result.PreVersion,
			"postMigrationVersion": result.PostVersion,
		}).Info("storage.RunMigrations")
	}
	return store, nil
}
