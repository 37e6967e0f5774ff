// Command httpd runs the relevance HTTP service: catalog search ranking,
// collection recommendations and record classification.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pustakadigital/relevance/internal/api"
	"github.com/pustakadigital/relevance/internal/config"
	"github.com/pustakadigital/relevance/internal/database"
	"github.com/pustakadigital/relevance/internal/engine"
	"github.com/pustakadigital/relevance/internal/logger"
	"github.com/pustakadigital/relevance/internal/logging"
	"github.com/pustakadigital/relevance/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "relevance: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to the configuration file")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zlog, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer zlog.Sync()
	log := logging.NewAdapter(zlog)

	log.Info("starting relevance service",
		"version", cfg.Service.Version,
		"port", cfg.Service.Port)

	provider := telemetry.NewProvider()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		catalog     api.CatalogStore
		collections api.CollectionStore
	)
	if cfg.Database.DSN != "" {
		db, err := database.Connect(ctx, database.Config{
			Driver:          cfg.Database.Driver,
			DSN:             cfg.Database.DSN,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		})
		if err != nil {
			return fmt.Errorf("connect catalog store: %w", err)
		}
		defer db.Close()

		if cfg.Database.Driver == "sqlite3" {
			if err := database.EnsureSchema(ctx, db); err != nil {
				return fmt.Errorf("bootstrap sqlite schema: %w", err)
			}
		}
		catalog = database.NewCatalogRepository(db)
		collections = database.NewCollectionRepository(db)
		log.Info("catalog store connected", "driver", cfg.Database.Driver)
	} else {
		log.Warn("no catalog store configured, requests must carry inline candidates")
	}

	eng := engine.New(log, provider, engine.Config{
		Version:        cfg.Service.Version,
		MinTokenLength: cfg.Engine.MinTokenLength,
		ReasoningSeed:  cfg.Engine.ReasoningSeed,
	})

	handler := api.NewHandler(eng, catalog, collections, log, cfg.Service.Name)
	server := api.NewServer(api.ServerConfig{
		Port:           cfg.Service.Port,
		RateLimitRPS:   cfg.Service.RateLimitRPS,
		RateLimitBurst: cfg.Service.RateLimitBurst,
		Development:    cfg.Logging.Development,
	}, handler, provider, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Service.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("relevance service stopped")
	return nil
}
