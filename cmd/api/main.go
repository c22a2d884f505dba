package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fellowdash.org/internal/app"
	"fellowdash.org/internal/appconf"
	"fellowdash.org/internal/logging"
	"fellowdash.org/internal/restapi"
	"fellowdash.org/internal/webui"
)

func main() {
	cfg, logLevel, err := parseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, logging.ParseLevel(logLevel))

	if err := run(cfg, logger); err != nil {
		os.Exit(1)
	}
}

// parseConfig layers command line flags over an optional YAML config file
// over the defaults. Flags given explicitly always win.
func parseConfig(fs *flag.FlagSet, args []string) (appconf.Config, string, error) {
	defaults := appconf.DefaultConfig()

	var (
		configPath    string
		envFlag       string
		apiKeysFlag   string
		exemptKeys    string
		logLevel      string
		port          int
		rateLimitFlag int
		tableFile     string
	)

	fs.IntVar(&port, "port", defaults.Port, "API server port")
	fs.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	fs.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	fs.StringVar(&exemptKeys, "exempt-api-keys", "", "Comma Separated API Keys exempt from rate limiting")
	fs.IntVar(&rateLimitFlag, "rate-limit", defaults.RateLimit, "Requests per second allowed per API key")
	fs.StringVar(&tableFile, "table-file", "", "Path to a YAML reference table replacing the built-in one")
	fs.StringVar(&configPath, "config", "", "Path to a YAML config file")
	fs.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return defaults, "", err
	}

	cfg := defaults
	if configPath != "" {
		loaded, err := appconf.LoadFile(configPath, defaults)
		if err != nil {
			return defaults, "", err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = port
		case "env":
			cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
		case "api-keys":
			cfg.ApiKeys = appconf.SplitKeys(apiKeysFlag)
		case "exempt-api-keys":
			cfg.ExemptApiKeys = appconf.SplitKeys(exemptKeys)
		case "rate-limit":
			cfg.RateLimit = rateLimitFlag
		case "table-file":
			cfg.TableFile = tableFile
		}
	})

	if err := cfg.Validate(); err != nil {
		return defaults, "", err
	}

	return cfg, logLevel, nil
}

func run(cfg appconf.Config, logger *slog.Logger) error {
	application := &app.Application{
		Config: cfg,
		Logger: logger,
	}

	if cfg.TableFile != "" {
		table, err := appconf.LoadTableFile(cfg.TableFile)
		if err != nil {
			return logging.ReplaceLogFatal(logger, "failed to load reference table", err)
		}
		application.Table = table
		logging.LogOperation(logger, "reference_table_loaded",
			slog.String("path", cfg.TableFile),
			slog.Int("months", len(table.Months())))
	}

	api := restapi.NewRestAPI(application)
	defer api.Shutdown()

	handler, err := buildHandler(application, api)
	if err != nil {
		return logging.ReplaceLogFatal(logger, "failed to build web UI", err)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return logging.ReplaceLogFatal(logger, "server stopped", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return logging.ReplaceLogFatal(logger, "graceful shutdown failed", err)
	}

	logger.Info("server stopped")
	return nil
}

// buildHandler mounts the JSON API and the dashboard on one mux and wraps
// it in the shared middleware chain.
func buildHandler(application *app.Application, api *restapi.RestAPI) (http.Handler, error) {
	webUI, err := webui.NewWebUI(application)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	api.SetRoutes(mux)
	webUI.SetWebUIRoutes(mux)

	requestLogger := restapi.NewRequestLoggingMiddleware(application.Logger)
	return requestLogger(api.WithSecurityHeaders(restapi.CompressionMiddleware(mux))), nil
}
