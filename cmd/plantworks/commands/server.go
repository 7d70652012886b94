package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/plantworks/plantworks/internal/apiserver"
	"github.com/plantworks/plantworks/internal/config"
	"github.com/plantworks/plantworks/internal/logging"
	"github.com/plantworks/plantworks/internal/mcpserver"
	"github.com/plantworks/plantworks/internal/metrics"
	"github.com/plantworks/plantworks/internal/session"
	"github.com/plantworks/plantworks/internal/tracing"
)

var (
	serverPort  int
	watchConfig bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Plantworks server",
	Long: `Start the Plantworks server which exposes the chat API, the
messaging webhook, prometheus metrics, and the MCP tool endpoint.`,
	Run: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0,
		"Port the API server listens on (overrides config file, 0 keeps the configured value)")
	serverCmd.Flags().BoolVar(&watchConfig, "watch-config", false,
		"Reload the config file on change (currently applies log level only)")
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	HandleError(err, "Configuration error")

	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	err = setupLog(logLevelFlags)
	HandleError(err, "Failed to setup logging")
	logger := logging.GetLogger("server")

	logger.Info("Starting Plantworks v%s", Version)
	logger.Debug("Configuration loaded: port=%d", cfg.Server.Port)

	// Tracing is optional: a failed init logs and continues.
	tracingProvider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		logger.Warn("Failed to initialize tracing (continuing without tracing): %v", err)
		tracingProvider = nil
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)

	comps, err := buildComponents(cfg, m)
	HandleError(err, "Failed to build components")
	logger.Info("Registered %d tools", len(comps.registry.List()))

	mcpSrv := mcpserver.New(comps.registry, Version)
	sessions := session.NewStore()

	api := apiserver.New(
		cfg.Server,
		cfg.Webhook,
		comps.coordinator,
		sessions,
		registry,
		mcpSrv.MCPServer(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	err = api.Start(groupCtx)
	HandleError(err, "Failed to start API server")

	if watchConfig && configPath != "" {
		watcher, err := config.NewWatcher(config.WatcherConfig{FilePath: configPath},
			func(newCfg *config.Config) error {
				// Credentials and endpoints are bound at construction;
				// only the log level is applied on reload.
				return logging.Initialize(newCfg.LogLevel, nil)
			})
		HandleError(err, "Failed to create config watcher")

		err = watcher.Start(groupCtx)
		HandleError(err, "Failed to start config watcher")

		group.Go(func() error {
			<-groupCtx.Done()
			return watcher.Stop()
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("Shutdown signal received, gracefully shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return api.Stop(shutdownCtx)
	})

	if tracingProvider != nil {
		group.Go(func() error {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return tracingProvider.Shutdown(shutdownCtx)
		})
	}

	logger.Info("Plantworks server running on %s:%d", cfg.Server.Host, cfg.Server.Port)

	if err := group.Wait(); err != nil && err != context.Canceled {
		logger.Error("Error during shutdown: %v", err)
	}
	logger.Info("Shutdown complete")
}
