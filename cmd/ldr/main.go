// Local Deep Research server — runs iterative LLM-driven research with
// live progress streaming, a persistent research history, and an
// embeddable research API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/active"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/api"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/cleanup"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/config"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/database"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/events"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/masking"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/research"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/search"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/services"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// buildLLMClient resolves the configured provider into a client. The API
// key is read from the environment variable the provider config names.
func buildLLMClient(cfg *config.Config) (llm.Client, error) {
	provider, err := cfg.LLMProviderRegistry.Get(cfg.LLMProvider)
	if err != nil {
		return nil, err
	}
	apiKey := ""
	if provider.APIKeyEnv != "" {
		apiKey = os.Getenv(provider.APIKeyEnv)
	}
	return llm.NewClient(string(provider.Type), llm.ProviderOptions{
		Model:       provider.Model,
		Endpoint:    provider.BaseURL,
		APIKey:      apiKey,
		Temperature: provider.Temperature,
		MaxTokens:   provider.MaxTokens,
		Timeout:     provider.Timeout,
	})
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	ctx := context.Background()
	slog.Info("Starting local-deep-research", "version", version.Full())

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Configuration loaded",
		"config_dir", *configDir,
		"strategy", cfg.Research.Strategy,
		"engine", cfg.Search.Engine,
		"llm_provider", cfg.LLMProvider)

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	researchService := services.NewResearchService(dbClient.Client)
	logService := services.NewLogService(dbClient.Client)
	resourceService := services.NewResourceService(dbClient.Client)
	settingsService := services.NewSettingsService(dbClient.Client)
	tokenService := services.NewTokenService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)

	// 4. Event streaming: NOTIFY publisher, WebSocket manager, LISTEN loop
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService), 10*time.Second)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Event streaming initialized")

	// 5. LLM client
	llmClient, err := buildLLMClient(cfg)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "provider", cfg.LLMProvider, "error", err)
		os.Exit(1)
	}
	slog.Info("LLM client initialized", "provider", llmClient.Provider(), "model", llmClient.Model())

	// 6. Search engines and the research runner
	userAgent := cfg.Search.UserAgent
	if userAgent == "" {
		userAgent = version.Full()
	}
	engineFactory := search.NewFactory(search.FactoryConfig{
		LLM:          llmClient,
		UserAgent:    userAgent,
		FetchTimeout: cfg.Search.FetchTimeout,
	})

	activeManager := active.NewManager()
	runner := services.NewRunner(
		researchService, logService, resourceService, settingsService, tokenService,
		activeManager, eventPublisher, llmClient, engineFactory, masking.NewService(),
		services.RunnerConfig{
			DefaultStrategy:       cfg.Research.Strategy,
			DefaultEngine:         cfg.Search.Engine,
			MaxIterations:         cfg.Research.MaxIterations,
			QuestionsPerIteration: cfg.Research.QuestionsPerIteration,
			ContextLimit:          cfg.Research.ContextLimit,
			SearchesPerSection:    cfg.Research.SearchesPerSection,
			MaxResults:            cfg.Search.MaxResults,
			MaxFilteredResults:    cfg.Search.MaxFilteredResults,
			CompressionMode:       cfg.Research.CompressionMode,
			OutputDir:             cfg.Research.OutputDir,
		}, nil)

	// Reap rows left in_progress by a previous process before serving.
	if reaped, err := researchService.SuspendStale(ctx, activeManager.IsActive); err != nil {
		slog.Error("Failed to suspend stale researches", "error", err)
	} else if reaped > 0 {
		slog.Info("Suspended stale researches from previous run", "count", reaped)
	}

	// 7. Retention cleanup
	cleanupService := cleanup.NewService(cfg.Retention, researchService, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. HTTP server
	library := research.NewClient(cfg, llmClient, nil, nil)
	server := api.NewServer(api.Deps{
		DB:          dbClient,
		Runner:      runner,
		Research:    researchService,
		Logs:        logService,
		Resources:   resourceService,
		Active:      activeManager,
		ConnManager: connManager,
		Library:     library,
		Config:      cfg.Server,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: ask live workers to stop, then drain HTTP.
	activeManager.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	slog.Info("Shutdown complete")
}
