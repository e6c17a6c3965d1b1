package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/sparkfolk/channelcast/internal/config"
	"github.com/sparkfolk/channelcast/internal/history"
	"github.com/sparkfolk/channelcast/internal/logger"
	"github.com/sparkfolk/channelcast/internal/server"
	"github.com/sparkfolk/channelcast/internal/telegram"
)

var configPath = flag.String("config", "configs/config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Setup logging with level support
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logrus.Infof("Configuration loaded from %s", *configPath)

	// Initialize history store
	var store *history.Store
	if cfg.History.Enabled {
		store = history.New(cfg.History.MaxEntries, cfg.History.FilePath, 0644, 0755)
		if err := store.Load(); err != nil {
			logrus.Warnf("Failed to load history, starting fresh: %v", err)
		} else {
			logrus.Infof("History loaded: %d records", store.Len())
		}
	} else {
		logrus.Debug("Calculation history disabled")
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logrus.Info("Shutdown signal received, cleaning up...")
		cancel()
	}()

	// Schedule the history sweep
	if cfg.History.Enabled {
		sweeper := cron.New()
		_, err := sweeper.AddFunc(cfg.History.SweepSchedule, func() {
			if err := store.Rotate(); err != nil {
				logrus.Warnf("Failed to rotate history: %v", err)
			}
			if err := store.Save(); err != nil {
				logrus.Warnf("Failed to persist history: %v", err)
			} else {
				logrus.Debugf("History sweep complete: %d records", store.Len())
			}
		})
		if err != nil {
			logrus.Fatalf("Failed to schedule history sweep: %v", err)
		}
		sweeper.Start()
		defer sweeper.Stop()
		logrus.Infof("History sweep scheduled: %s", cfg.History.SweepSchedule)
	}

	// Start Telegram bot
	if cfg.Telegram.Enabled {
		client, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.MaxRetries, cfg.Telegram.RetryDelayBase)
		if err != nil {
			logrus.Fatalf("Failed to initialize Telegram client: %v", err)
		}
		go telegram.NewBot(client).Run(ctx)
	} else {
		logrus.Debug("Telegram bot disabled")
	}

	// Start HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      server.New(store),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logrus.Infof("HTTP server listening on %s", cfg.Server.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Final history save
	if cfg.History.Enabled {
		if err := store.Rotate(); err != nil {
			logrus.Warnf("Failed to rotate history: %v", err)
		}
		if err := store.Save(); err != nil {
			logrus.Errorf("Failed to persist history on shutdown: %v", err)
		} else {
			logrus.Infof("History persisted: %d records", store.Len())
		}
	}

	logrus.Info("Service stopped")
}
