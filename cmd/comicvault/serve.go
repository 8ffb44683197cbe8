package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"comicvault/internal/api"
	"comicvault/internal/scheduler"
	"comicvault/internal/service"
	"comicvault/internal/storage/postgres"
	"comicvault/migrations"
)

const shutdownTimeout = 10 * time.Second

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the favorites refresher",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	logger := a.logger

	if migrateOnStart {
		applied, err := postgres.Migrate(ctx, a.db, migrations.FS)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", "count", len(applied))
	}

	if err := a.favorites.Load(ctx); err != nil {
		return err
	}

	handler := api.NewServer(api.Services{
		SearchCharacters: a.searchCharacters,
		SearchComics:     a.searchComics,
		ListCharacters:   a.listCharacters,
		ListIssues:       a.listIssues,
		CharacterDetail:  a.detail,
		CharacterIssues:  a.characterIssues,
		Issues:           a.batch,
		Favorites:        a.favorites,
		Events:           a.bus,
	}, a.metrics, logger)

	server := &http.Server{
		Addr:              a.cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Open event streams only end when their subscription closes.
	server.RegisterOnShutdown(func() { _ = a.bus.Close() })

	refresher := service.NewFavoritesRefresher(a.favorites, a.detail, logger)
	sched := scheduler.NewScheduler(refresher, a.cfg.Refresh.Interval, logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting comicvault", "addr", server.Addr, "refresh_interval", a.cfg.Refresh.Interval)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		if err := sched.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("run scheduler: %w", err)
		}
		return nil
	})

	return g.Wait()
}
