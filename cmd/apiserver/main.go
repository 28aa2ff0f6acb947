// Package main runs the Light Dark companion REST API server: the backend
// for the promotional site's deck builder, card browser, and deck sharing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lightdarktcg/companion/internal/api"
	"github.com/lightdarktcg/companion/internal/api/websocket"
	"github.com/lightdarktcg/companion/internal/catalog"
	"github.com/lightdarktcg/companion/internal/config"
	"github.com/lightdarktcg/companion/internal/storage"
	"github.com/lightdarktcg/companion/internal/version"
)

var (
	configFile  = flag.String("config", "", "Config file path (default: ~/.ld-companion/config.toml)")
	port        = flag.Int("port", 0, "API server port (overrides config)")
	catalogFile = flag.String("catalog", "", "Catalog JSON path (overrides config)")
	dbPath      = flag.String("db-path", "", "Database path (overrides config; default: ~/.ld-companion/data.db)")
	noShare     = flag.Bool("no-share", false, "Disable the shared deck store")
)

// staticCatalog serves a catalog that never changes, for runs without the
// file watcher.
type staticCatalog struct {
	cat *catalog.Catalog
}

func (s staticCatalog) Catalog() *catalog.Catalog { return s.cat }

func main() {
	flag.Parse()

	fmt.Println("Light Dark Companion - REST API Server")
	fmt.Printf("Version %s\n", version.GetVersion())
	fmt.Println()

	// Load configuration
	var cfg *config.Config
	var err error
	if *configFile != "" {
		cfg, err = config.LoadFile(*configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flag overrides
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *catalogFile != "" {
		cfg.Catalog.Path = *catalogFile
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logLevel := slog.LevelInfo
	if cfg.App.DebugMode {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Load the card catalog
	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	fmt.Printf("Catalog: %s (%d cards)\n", cfg.Catalog.Path, cat.Len())

	// Open the shared deck database
	var db *storage.DB
	if !*noShare {
		finalDBPath := cfg.Database.Path
		if finalDBPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				log.Fatalf("Failed to get home directory: %v", err)
			}
			finalDBPath = filepath.Join(home, ".ld-companion", "data.db")
		}

		if err := os.MkdirAll(filepath.Dir(finalDBPath), 0o755); err != nil {
			log.Fatalf("Failed to create database directory: %v", err)
		}

		fmt.Printf("Database: %s\n", finalDBPath)

		dbConfig := storage.DefaultConfig(finalDBPath)
		dbConfig.AutoMigrate = true
		db, err = storage.Open(dbConfig)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Printf("Error closing database: %v", err)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create API server
	serverConfig := &api.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimit:      cfg.Server.RateLimit,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	}

	var server *api.Server
	if cfg.Catalog.Watch {
		watcher, err := catalog.NewWatcher(catalog.WatcherConfig{
			Path:    cfg.Catalog.Path,
			Initial: cat,
			Logger:  logger,
			OnReload: func(c *catalog.Catalog) {
				server.WebSocketHub().BroadcastEvent(websocket.Event{
					Type: websocket.EventCatalogReloaded,
					Data: map[string]int{"cards": c.Len()},
				})
			},
		})
		if err != nil {
			log.Fatalf("Failed to create catalog watcher: %v", err)
		}
		server = api.NewServer(serverConfig, watcher, db)

		if err := watcher.Start(ctx); err != nil {
			log.Fatalf("Failed to start catalog watcher: %v", err)
		}
		defer watcher.Stop()
	} else {
		server = api.NewServer(serverConfig, staticCatalog{cat: cat}, db)
	}

	// Start API server
	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}

	fmt.Println()
	fmt.Printf("API server running at http://localhost:%d\n", server.Port())
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println()
	fmt.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	fmt.Println("API server stopped.")
}
