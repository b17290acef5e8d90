package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/payrollwedge/wagegrowth/internal/api"
	"github.com/payrollwedge/wagegrowth/internal/config"
	"github.com/payrollwedge/wagegrowth/internal/report"
	"github.com/payrollwedge/wagegrowth/internal/scenario"
	"github.com/payrollwedge/wagegrowth/internal/store"
)

func main() {
	configPath := flag.String("config", "scenarios.yaml", "path to scenario file")
	format := flag.String("format", "", "report format: text | json | prometheus (overrides output.format)")
	serve := flag.Bool("serve", false, "run the HTTP API and hot-reload the scenario file instead of printing a report")
	addr := flag.String("addr", "", "HTTP listen address in serve mode (overrides server.addr)")
	flag.Parse()

	// Logs go to stderr so one-shot reports on stdout stay clean.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	slog.Info("config loaded",
		"path", *configPath,
		"scenarios", len(cfg.Scenarios),
		"default_beta", cfg.Defaults.Beta,
		"default_employer_share", cfg.Defaults.EmployerShare,
	)

	if !*serve {
		f := cfg.Output.Format
		if *format != "" {
			f = *format
		}
		if err := runOnce(os.Stdout, cfg, f); err != nil {
			slog.Error("report failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err := runServer(*configPath, cfg); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

// runOnce evaluates every scenario and renders the report to w.
func runOnce(w io.Writer, cfg *config.Config, format string) error {
	results, err := scenario.Run(cfg)
	if err != nil {
		return err
	}
	return report.Render(w, format, results)
}

// runServer serves the API until SIGINT/SIGTERM, re-evaluating scenarios
// whenever the config file changes.
func runServer(configPath string, cfg *config.Config) error {
	results, err := scenario.Run(cfg)
	if err != nil {
		return err
	}
	st := store.New()
	st.Replace(results)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		if err := config.Watch(ctx, configPath, func(updated *config.Config) {
			res, err := scenario.Run(updated)
			if err != nil {
				slog.Error("scenario run failed, keeping previous results", "err", err)
				return
			}
			st.Replace(res)
			slog.Info("scenarios re-evaluated", "scenarios", len(res))
		}); err != nil {
			slog.Error("config watcher stopped", "err", err)
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.New(st),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case <-ctx.Done():
	case err := <-errc:
		return err
	}

	slog.Info("wagegrowth shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	return srv.Shutdown(shutdownCtx)
}
