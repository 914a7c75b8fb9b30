package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/internal/config"
	"github.com/aretw0/canopy/internal/logging"
	"github.com/aretw0/canopy/internal/metrics"
	"github.com/aretw0/canopy/internal/presentation/tui"
	httpAdapter "github.com/aretw0/canopy/pkg/adapters/http"
	"github.com/aretw0/canopy/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/canopy/pkg/adapters/redis"
	"github.com/aretw0/canopy/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the widget HTTP server",
	Long:  `Starts the Canopy engine in server mode, exposing the widget and action API over HTTP with SSE updates.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd); err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config)")
	serveCmd.Flags().String("catalog", "", "Path to a seed catalog file (overrides config)")
}

func runServe(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Server.Address = ":" + port
	}
	if catalog, _ := cmd.Flags().GetString("catalog"); catalog != "" {
		cfg.Catalog = catalog
	}

	logger := logging.New(logging.ParseLevel(cfg.Logging.Level))

	tui.PrintBanner()

	store, closeStore, err := buildStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	products, err := config.LoadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := store.SeedProducts(ctx, products); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	logger.Info("catalog seeded", "products", len(products))

	registry := prometheus.NewRegistry()
	collector := metrics.New(registry)

	streams := httpAdapter.NewStreamManager(logger)
	engine := canopy.New(
		canopy.WithStore(store),
		canopy.WithBroadcaster(streams),
		canopy.WithLifecycleHooks(collector.Hooks()),
		canopy.WithLogger(logger),
	)

	server := httpAdapter.NewServer(store, engine.Dispatcher(),
		httpAdapter.WithLogger(logger),
		httpAdapter.WithStreamManager(streams),
	)

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: server.Handler(),
	}

	// Metrics on a separate listener, kept off the public surface.
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		logger.Info("metrics server listening", "addr", cfg.Server.MetricsAddress)
		if err := http.ListenAndServe(cfg.Server.MetricsAddress, mux); err != nil {
			logger.Error("metrics server failed", "err", err)
		}
	}()

	serverErrors := make(chan error, 1)
	go func() {
		fmt.Printf("Starting Canopy Server on %s\n", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err

	case sig := <-shutdown:
		fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		fmt.Println("Canopy Server stopped gracefully")
		return nil
	}
}

// buildStore selects the Redis backend when configured, falling back to the
// in-memory store.
func buildStore(cfg config.Config, logger *slog.Logger) (ports.Store, func(), error) {
	if cfg.Redis.Address == "" {
		return memory.NewStore(), func() {}, nil
	}

	var opts []redisAdapter.Option
	if cfg.Redis.Prefix != "" {
		opts = append(opts, redisAdapter.WithPrefix(cfg.Redis.Prefix))
	}
	store := redisAdapter.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, opts...)
	logger.Info("using redis store", "addr", cfg.Redis.Address)
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("redis close failed", "err", err)
		}
	}, nil
}
