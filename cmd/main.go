// Package main wires the HTTP server for the school activities service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/uiyort/skills-getting-started-with-github-copilot/config"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/metrics"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/repository"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/transport/http/server"
	"github.com/uiyort/skills-getting-started-with-github-copilot/internal/usecase"
	"github.com/uiyort/skills-getting-started-with-github-copilot/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "school-activities",
	Short:        "Serve the Mergington High School activities API",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd)
	},
}

func init() {
	config.RegisterFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig(cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, cfg.Roster.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return err
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	var (
		m        *metrics.Metrics
		gatherer prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
		gatherer = reg
	}

	uc := usecase.New(log, repo, cfg.HTTP.RequestTimeout, usecase.Options{
		ValidateEmail: cfg.Roster.ValidateEmail,
		Metrics:       m,
	})
	// prime the participants gauge
	if _, err := uc.Activities(ctx); err != nil {
		log.Warnw("initial roster read failed", "error", err)
	}

	serv := server.New(cfg, log, uc, m, gatherer)

	go func() {
		log.Infow("listening", "addr", cfg.ServerAddr())
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	if err := serv.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		log.Warnw("server shutdown", "timeout", cfg.Server.ShutdownTimeout, "error", err)
	}
	return nil
}
