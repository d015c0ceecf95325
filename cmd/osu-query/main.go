package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/osuapi/internal/config"
	"github.com/okian/osuapi/pkg/logger"
	"github.com/okian/osuapi/pkg/metrics"
	"github.com/okian/osuapi/pkg/osu"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	metrics.GetRegistry().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, logger.Get())
	stop()
	_ = logger.Sync()

	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			os.Stderr.WriteString("osu-query: " + err.Error() + "\n")
		}
		os.Exit(1)
	}
}

// run loads the configuration, executes the requested query and writes the
// typed result to out as indented JSON. With -interval it repeats the query
// until ctx is done.
func run(ctx context.Context, args []string, out io.Writer, log logger.Logger) error {
	q, err := parseFlags(args)
	if err != nil {
		return err
	}

	// Load configuration (defaults -> .env -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	client := osu.New(cfg.APIKey,
		osu.WithBaseURL(cfg.BaseURL),
		osu.WithTimeout(cfg.Timeout()),
		osu.WithLogger(log),
	)

	if cfg.MetricsAddr != "" {
		srv := newMetricsServer(cfg.MetricsAddr)
		go func() {
			log.Info(ctx, "starting metrics server", logger.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error(ctx, "metrics server failed", logger.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error(ctx, "metrics server shutdown failed", logger.Error(err))
			}
		}()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if err := execute(ctx, client, q, enc); err != nil {
		return err
	}
	if q.interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info(ctx, "stopping")
			return nil
		case <-ticker.C:
			if err := execute(ctx, client, q, enc); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.Warn(ctx, "query failed", logger.String("endpoint", q.endpoint), logger.Error(err))
			}
		}
	}
}

func execute(ctx context.Context, client *osu.Client, q query, enc *json.Encoder) error {
	result, err := q.do(ctx, client)
	if err != nil {
		return err
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func newMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
