package main

import (
	"context"
	"time"

	"github.com/calibre9/scrape-import-api/infrastructure/database/postgres"
	"github.com/calibre9/scrape-import-api/infrastructure/repository"
	"github.com/calibre9/scrape-import-api/internal/api"
	"github.com/calibre9/scrape-import-api/internal/config"
	"github.com/calibre9/scrape-import-api/internal/usecases/catalog"
	"github.com/calibre9/scrape-import-api/internal/usecases/importing"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	campaignRepo := repository.NewCampaignRepository(pgConn)
	scrapeTypeRepo := repository.NewScrapeTypeRepository(pgConn)
	scrapeRecordRepo := repository.NewScrapeRecordRepository(pgConn, cfg.Import.BatchSize)

	catalogService := catalog.NewService(campaignRepo, scrapeTypeRepo)
	importService := importing.NewService(campaignRepo, scrapeTypeRepo, scrapeRecordRepo)

	server, err := api.New(cfg, catalogService, importService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
