package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/storage"
)

func main() {
	cfg, err := server_config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}
	logger := logging.SetupLogging(cfg.Log.Level)

	store, err := storage.NewStorage(cfg.Postgres)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	result, err := storage.RunMigrations(store.DB)
	if err != nil {
		logger.WithError(err).Fatal("storage.RunMigrations")
		return
	}

	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreVersion,
		"postMigrationVersion": result.PostVersion,
	}).Info("Migration status")
}
