package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exodash/exodash/internal/app"
	"github.com/exodash/exodash/internal/appconf"
	"github.com/exodash/exodash/internal/catalog"
	"github.com/exodash/exodash/internal/logging"
	"github.com/exodash/exodash/internal/metrics"
)

func main() {
	cfg, catalogCfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(os.Stdout, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager, err := catalog.InitManager(ctx, catalogCfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to load exoplanet dataset", err,
			slog.String("source", catalogCfg.DatasetURL))
		os.Exit(1)
	}

	m := metrics.New()
	m.RecordDataset(manager.Summary())

	application := &app.Application{
		Config:        cfg,
		CatalogConfig: catalogCfg,
		Logger:        logger,
		Catalog:       manager,
		Metrics:       m,
	}

	handler, rateLimiter := routes(application)
	defer rateLimiter.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	if err := serve(ctx, srv, logger); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// parseConfig builds the server and dataset settings from defaults, an
// optional YAML file and the command line, in increasing precedence.
func parseConfig(args []string, output io.Writer) (appconf.Config, catalog.Config, error) {
	cfg := appconf.Config{Port: 4000, Env: appconf.Development, LogLevel: "info", RateLimit: 100}
	catalogCfg := catalog.DefaultConfig()

	fs := flag.NewFlagSet("exodash", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		port          int
		env           string
		logLevel      string
		rateLimit     int
		datasetURL    string
		fetchTimeout  time.Duration
		fetchAttempts int
		configPath    string
	)

	fs.IntVar(&port, "port", cfg.Port, "HTTP server port")
	fs.StringVar(&env, "env", cfg.Env.String(), "Environment (development|test|production)")
	fs.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.IntVar(&rateLimit, "rate-limit", cfg.RateLimit, "Requests per second per client, 0 disables limiting")
	fs.StringVar(&datasetURL, "dataset-url", catalogCfg.DatasetURL, "URL or local path of the Kepler dataset")
	fs.DurationVar(&fetchTimeout, "fetch-timeout", catalogCfg.FetchTimeout, "Timeout for a single dataset download attempt")
	fs.IntVar(&fetchAttempts, "fetch-attempts", catalogCfg.FetchAttempts, "Dataset download attempts before giving up")
	fs.StringVar(&configPath, "config", "", "Optional YAML configuration file")

	if err := fs.Parse(args); err != nil {
		return cfg, catalogCfg, err
	}

	if configPath != "" {
		file, err := appconf.LoadFile(configPath)
		if err != nil {
			return cfg, catalogCfg, err
		}
		file.Apply(&cfg)
		applyDatasetFile(file, &catalogCfg)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = port
		case "env":
			cfg.Env = appconf.EnvFlagToEnvironment(env)
		case "log-level":
			cfg.LogLevel = logLevel
		case "rate-limit":
			cfg.RateLimit = rateLimit
		case "dataset-url":
			catalogCfg.DatasetURL = datasetURL
		case "fetch-timeout":
			catalogCfg.FetchTimeout = fetchTimeout
		case "fetch-attempts":
			catalogCfg.FetchAttempts = fetchAttempts
		}
	})

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, catalogCfg, err
	}
	if catalogCfg.FetchAttempts < 1 {
		return cfg, catalogCfg, errors.New("fetch-attempts must be at least 1")
	}

	return cfg, catalogCfg, nil
}

func applyDatasetFile(file *appconf.File, catalogCfg *catalog.Config) {
	if file.Dataset.URL != "" {
		catalogCfg.DatasetURL = file.Dataset.URL
	}
	if file.Dataset.FetchTimeout != 0 {
		catalogCfg.FetchTimeout = file.Dataset.FetchTimeout
	}
	if file.Dataset.FetchAttempts != 0 {
		catalogCfg.FetchAttempts = file.Dataset.FetchAttempts
	}
}

// newLogger returns a JSON logger in production and a text logger otherwise.
func newLogger(w io.Writer, cfg appconf.Config) *slog.Logger {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	if cfg.Env == appconf.Production {
		return logging.NewStructuredLogger(w, level)
	}
	return logging.NewTextLogger(w, level)
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}
