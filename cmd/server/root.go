package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"exercise-tracker/internal/bootstrap"
	"exercise-tracker/internal/config"
	"exercise-tracker/internal/logger"
	mysqlClient "exercise-tracker/internal/platform/mysql"
	httptransport "exercise-tracker/internal/transport/http"
)

func newRootCmd() *cobra.Command {
	var configPath string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the users and exercises tables, then exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate(cmd.Context(), configPath)
		},
	}

	rootCmd := &cobra.Command{
		Use:   "exercise-tracker",
		Short: "Exercise tracker REST API",
		Long: `exercise-tracker registers users, logs their exercises and serves
filtered exercise logs over HTTP. Running it without a subcommand serves.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the TOML config file (default $CONFIG_FILE or configs/config.toml)")
	rootCmd.AddCommand(serveCmd, migrateCmd)

	return rootCmd
}

func loadConfig(path string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load config failed: %w", err)
	}
	return cfg, logger.New(cfg.Log.Level), nil
}

func serve(ctx context.Context, configPath string) error {
	cfg, log, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	app, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error("close resources failed", "error", err)
		}
	}()

	router := httptransport.NewRouter(app)
	server := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	return waitForShutdown(server, errCh, log)
}

func waitForShutdown(server *http.Server, errCh <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func migrate(ctx context.Context, configPath string) error {
	cfg, log, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	db, err := mysqlClient.New(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := mysqlClient.Migrate(db); err != nil {
		return err
	}
	log.Info("migration completed")
	return nil
}
