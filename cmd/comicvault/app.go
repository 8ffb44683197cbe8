package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/multierr"

	"comicvault/internal/config"
	"comicvault/internal/metrics"
	"comicvault/internal/publisher"
	"comicvault/internal/service"
	"comicvault/internal/source/comicvine"
	"comicvault/internal/storage/postgres"
)

// app holds the wired dependency graph shared by every subcommand.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	db      *sqlx.DB

	bus      *publisher.Bus
	rabbitMQ *publisher.RabbitMQ

	remote           *comicvine.Client
	detail           *service.CharacterDetail
	batch            *service.BatchFetcher
	favorites        *service.FavoritesService
	searchCharacters *service.SearchCharacters
	searchComics     *service.SearchComics
	listCharacters   *service.ListCharacters
	listIssues       *service.ListIssues
	characterIssues  *service.CharacterIssues
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, setupLogger(cfg.LogLevel), nil
}

func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("connected to database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)
	return db, nil
}

func newApp(ctx context.Context) (*app, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}

	m, err := metrics.New()
	if err != nil {
		return nil, err
	}

	db, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		metrics: m,
		db:      db,
		bus:     publisher.NewBus(logger),
	}

	notifier := publisher.Multi{a.bus}
	if cfg.RabbitMQ.Enabled {
		a.rabbitMQ, err = publisher.NewRabbitMQ(publisher.Config{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.RabbitMQ.Exchange,
		}, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		notifier = append(notifier, a.rabbitMQ)
	}

	characters := postgres.NewCharacterStore(db)
	issues := postgres.NewIssueStore(db)
	cache := postgres.NewCacheStore(db)
	txManager := postgres.NewTransactionManager(db)

	a.remote = comicvine.New(comicvine.Config{
		BaseURL:        cfg.API.BaseURL,
		APIKey:         cfg.API.APIKey,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, m, logger)

	a.detail = service.NewCharacterDetail(a.remote, characters, cfg.Cache.DetailMirrorSize, cfg.Cache.TTL, logger)
	a.batch = service.NewBatchFetcher(a.remote, cfg.Batch, m, logger)
	a.favorites = service.NewFavoritesService(characters, txManager, notifier, m, logger)
	a.searchCharacters = service.NewSearchCharacters(a.remote, cache, cfg.Cache.TTL, m, logger)
	a.searchComics = service.NewSearchComics(a.remote, cache, cfg.Cache.TTL, m, logger)
	a.listCharacters = service.NewListCharacters(a.remote, cache, cfg.Cache.TTL, m, logger)
	a.listIssues = service.NewListIssues(a.remote, cache, cfg.Cache.TTL, m, logger)
	a.characterIssues = service.NewCharacterIssues(a.detail, a.batch, issues, cache, cfg.Cache.TTL, cfg.Batch.Size, m, logger)

	return a, nil
}

func (a *app) Close() error {
	var err error
	err = multierr.Append(err, a.bus.Close())
	if a.rabbitMQ != nil {
		err = multierr.Append(err, a.rabbitMQ.Close())
	}
	err = multierr.Append(err, a.db.Close())
	return err
}

// withApp builds the dependency graph, runs fn and tears the graph down again.
func withApp(ctx context.Context, fn func(ctx context.Context, a *app) error) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}
