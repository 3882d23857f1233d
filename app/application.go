package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"weekendly.app/api"
	"weekendly.app/config"
	"weekendly.app/metrics"
	"weekendly.app/planner"
	"weekendly.app/providers"
	"weekendly.app/providers/cache"
	"weekendly.app/scheduler"
	"weekendly.app/service"
	"weekendly.app/storage"
)

// Application represents the main application with all its dependencies
type Application struct {
	config        *config.Config
	planStore     storage.PlanStore
	snapshotCache *providers.InstrumentedSnapshotCache
	textGenerator providers.TextGenerator
	server        *api.Server
	scheduler     *scheduler.Scheduler
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeStorage(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) initializeStorage() error {
	slog.Info("Initializing plan storage...", "type", app.config.Storage.Type)

	store, err := storage.NewPlanStoreFactory().CreatePlanStore(&app.config.Storage)
	if err != nil {
		slog.Error("Failed to initialize plan storage", "error", err)
		return fmt.Errorf("initialize plan storage: %w", err)
	}

	app.planStore = store
	slog.Info("Plan storage initialized successfully")
	return nil
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	planMetrics := metrics.NewPlanMetrics()
	planService := planner.NewStore(app.planStore, planMetrics)
	planService.Init(context.Background())

	weatherService := app.createWeatherService()
	suggestionService, err := app.createSuggestionService()
	if err != nil {
		return fmt.Errorf("create suggestion service: %w", err)
	}

	server, err := api.NewServer(api.ServerOptions{
		Config:            app.config,
		PlanService:       planService,
		WeatherService:    weatherService,
		SuggestionService: suggestionService,
		PlanStats:         planMetrics,
		SuggestionStats:   suggestionService.Metrics(),
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	app.server = server
	app.scheduler = scheduler.NewScheduler(app.config, weatherService)

	slog.Info("Services initialized successfully")
	return nil
}

func (app *Application) createWeatherService() *service.WeatherService {
	slog.Debug("Creating weather service...")

	provider := providers.NewOpenWeatherMapProvider(&app.config.Weather)
	app.snapshotCache = providers.NewInstrumentedSnapshotCache(cache.NewMemorySnapshotCache(), "memory")

	return service.NewWeatherService(
		provider,
		app.snapshotCache,
		time.Duration(app.config.Weather.CacheTTLMinutes)*time.Minute,
		app.config.Weather.DefaultCity,
	)
}

func (app *Application) createSuggestionService() (*service.SuggestionService, error) {
	slog.Debug("Creating suggestion service...")

	var gemini *providers.GeminiSuggestionProvider
	if app.config.Gemini.APIKey != "" {
		textGen, err := providers.NewGeminiTextGenerator(context.Background(), &app.config.Gemini)
		if err != nil {
			return nil, err
		}
		app.textGenerator = textGen
		gemini = providers.NewGeminiSuggestionProvider(textGen)
		slog.Info("Gemini suggestion provider enabled", "model", app.config.Gemini.Model)
	} else {
		slog.Info("Gemini API key not set, using curated suggestions only")
	}

	chain := providers.NewSuggestionChain(gemini)
	return service.NewSuggestionService(chain, app.config.Suggestions.MaxSuggestions), nil
}

// Start starts the application
func (app *Application) Start() error {
	slog.Info("Starting application...")

	slog.Info("Starting scheduler...")
	app.scheduler.Start()

	slog.Info("Starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	if app.scheduler != nil {
		app.scheduler.Stop()
	}
	if app.snapshotCache != nil {
		app.snapshotCache.Stop()
	}
	if app.textGenerator != nil {
		if err := app.textGenerator.Close(); err != nil {
			slog.Warn("Error closing text generator", "error", err)
		}
	}
	if app.planStore != nil {
		if err := app.planStore.Close(); err != nil {
			slog.Warn("Error closing plan storage", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}
