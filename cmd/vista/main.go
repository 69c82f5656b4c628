package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/vista/internal/cli"
	"github.com/alexanderramin/vista/internal/config"
	"github.com/alexanderramin/vista/internal/db"
	"github.com/alexanderramin/vista/internal/export"
	"github.com/alexanderramin/vista/internal/render"
	"github.com/alexanderramin/vista/internal/repository"
	"github.com/alexanderramin/vista/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := cfg.Logger(zerolog.ConsoleWriter{Out: os.Stderr})

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Saved filters live in Redis when configured, else next to the records.
	var kv repository.KVStore = repository.NewSQLiteKVStore(database)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
		defer client.Close()
		if err := client.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("connecting to redis at %s: %w", cfg.RedisAddr, err)
		}
		kv = repository.NewRedisKVStore(client)
	}

	// Wire repositories
	recordRepo := repository.NewSQLiteRecordRepo(database)
	filterStore := repository.NewKVSavedFilterStore(kv)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(logger))
	}
	notices := &cli.NoticeRelay{Fallback: &service.WriterNotifier{W: os.Stderr}}

	// Wire services
	dashboard := service.NewDashboardService(recordRepo, nil, observers...)
	exporter := export.NewExporter(render.NewSnapshotter())

	app := &cli.App{
		Dashboard: dashboard,
		Exports:   service.NewExportService(dashboard, exporter, notices, observers...),
		Filters:   service.NewSavedFilterService(filterStore, logger, observers...),
		Records:   service.NewRecordService(recordRepo, uow, observers...),
		Notices:   notices,

		Logger:         logger,
		ExportDir:      cfg.ExportDir,
		Dark:           cfg.Dark(),
		Addr:           cfg.Addr,
		SearchDebounce: cfg.SearchDebounce,
	}

	// Detect interactive terminal: bare "vista" opens the dashboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
