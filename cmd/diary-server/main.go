// @title       Pet Diary LLM API
// @version     1.0
// @description Generates a first-person pet diary entry from daily health telemetry.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petdiary/internal/api"
	"petdiary/internal/config"
	"petdiary/internal/db"
	"petdiary/internal/diary"
	"petdiary/internal/llm"
	"petdiary/internal/logging"
	"petdiary/internal/mqtt"
	"petdiary/internal/probe"
)

func main() {
	bootLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	if err := config.LoadDotEnv(); err != nil {
		bootLogger.Error("load .env failed", "error", err)
		os.Exit(1)
	}

	cfg, err := config.LoadDiaryServerConfig()
	if err != nil {
		bootLogger.Error("load config failed", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat, "pet-diary")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gateway := llm.NewGateway(llm.Config{
		Provider:         cfg.LLMProvider,
		APIKey:           cfg.LLMAPIKey,
		Model:            cfg.LLMModel,
		OpenAIBaseURL:    cfg.OpenAIBaseURL,
		AnthropicBaseURL: cfg.AnthropicBaseURL,
		GeminiBaseURL:    cfg.GeminiBaseURL,
		Timeout:          cfg.LLMTimeout,
		MaxTokens:        cfg.LLMMaxTokens,
	}, nil)
	status := gateway.Status()
	logger.Info("llm provider configured",
		"provider", status.Provider,
		"model", status.Model,
		"api_key_configured", status.APIKeyConfigured,
	)
	if !gateway.Configured() {
		logger.Warn("llm provider unavailable, serving template diaries only")
	}

	var recorder diary.Recorder
	if cfg.DBDSN != "" {
		store, err := db.New(ctx, cfg.DBDSN)
		if err != nil {
			logger.Error("connect db failed", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			logger.Error("migrate db failed", "error", err)
			os.Exit(1)
		}
		recorder = store
		logger.Info("generation audit log enabled")
	}

	diarySvc := diary.New(gateway, recorder, logger)

	var probeSource api.ProbeSource
	if cfg.ProbeInterval > 0 {
		monitor := probe.NewMonitor(gateway, cfg.LLMTimeout, logger)
		scheduler, err := probe.NewScheduler(monitor, cfg.ProbeInterval)
		if err != nil {
			logger.Error("init provider probe failed", "error", err)
			os.Exit(1)
		}
		scheduler.Start()
		defer func() {
			if err := scheduler.Stop(); err != nil {
				logger.Warn("stop provider probe failed", "error", err)
			}
		}()
		probeSource = monitor
		logger.Info("provider probe enabled", "interval", cfg.ProbeInterval)
	}

	httpServer := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: api.NewRouter(api.Options{
			Diary:          diarySvc,
			Probe:          probeSource,
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Logger:         logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("diary server started", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	if cfg.MQTTBrokerURL != "" {
		hub := mqtt.NewHub(mqtt.HubConfig{
			BrokerURL:   cfg.MQTTBrokerURL,
			ClientID:    cfg.MQTTClientID,
			Username:    cfg.MQTTUsername,
			Password:    cfg.MQTTPassword,
			TopicPrefix: cfg.MQTTTopicPrefix,
		}, diarySvc, logger)
		if err := hub.Start(ctx); err != nil {
			logger.Error("start mqtt hub failed, telemetry ingestion disabled", "error", err)
		} else {
			logger.Info("mqtt telemetry ingestion enabled", "broker", cfg.MQTTBrokerURL, "topic", mqtt.TopicPetTelemetry(cfg.MQTTTopicPrefix))
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("received shutdown signal")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	cancel()
}
