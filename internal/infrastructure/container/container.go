package container

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/photomatch/photomatch-backend/internal/config"
	httpdelivery "github.com/photomatch/photomatch-backend/internal/delivery/http"
	"github.com/photomatch/photomatch-backend/internal/delivery/http/handler"
	"github.com/photomatch/photomatch-backend/internal/infrastructure/database"
	"github.com/photomatch/photomatch-backend/internal/infrastructure/gemini"
	"github.com/photomatch/photomatch-backend/internal/infrastructure/server"
	"github.com/photomatch/photomatch-backend/internal/repository"
	"github.com/photomatch/photomatch-backend/internal/repository/memory"
	"github.com/photomatch/photomatch-backend/internal/repository/postgres"
	"github.com/photomatch/photomatch-backend/internal/usecase/booking"
	"github.com/photomatch/photomatch-backend/internal/usecase/catalog"
	"github.com/photomatch/photomatch-backend/internal/usecase/optimizer"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
	Logger zerolog.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger zerolog.Logger) (*Container, error) {
	var (
		db               *sqlx.DB
		photographerRepo repository.PhotographerRepository
		cityRepo         repository.CityRepository
		bookingRepo      repository.BookingRepository
	)

	switch cfg.Storage.Type {
	case "postgres":
		var err error
		db, err = database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		photographerRepo = postgres.NewPhotographerRepository(db)
		cityRepo = postgres.NewCityRepository(db)
		bookingRepo = postgres.NewBookingRepository(db)
	case "memory":
		photographers, cities := memory.DemoCatalog()
		photographerRepo = memory.NewPhotographerRepository(photographers)
		cityRepo = memory.NewCityRepository(cities)
		bookingRepo = memory.NewBookingRepository()
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Storage.Type)
	}

	// Redis is optional: without it the catalog snapshot lives in
	// process only.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		var err error
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, running without snapshot cache")
			redisClient = nil
		}
	}

	// Gemini is optional as well; without it explanations stay with the
	// deterministic breakdown text.
	var geminiClient *gemini.GeminiClient
	if cfg.GeminiAPIKey != "" {
		var err error
		geminiClient, err = gemini.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn().Err(err).Msg("gemini unavailable, using deterministic explanations")
			geminiClient = nil
		}
	}

	// Initialize use cases
	catalogUseCase := catalog.NewCatalogUseCase(photographerRepo, cityRepo, redisClient, logger)
	catalogUseCase.WarmFromCache(context.Background())

	weights := optimizer.Weights{
		Rating:     cfg.Optimizer.RatingWeight,
		Price:      cfg.Optimizer.PriceWeight,
		Travel:     cfg.Optimizer.TravelWeight,
		Experience: cfg.Optimizer.ExperienceWeight,
	}
	travel := optimizer.TravelParams{
		BaseFee:       cfg.Optimizer.TravelBaseFee,
		RatePerKm:     cfg.Optimizer.TravelRatePerKm,
		MaxDistanceKm: cfg.Optimizer.MaxTravelKm,
	}

	// The interface conversion keeps a nil Gemini client from reaching
	// the optimizer as a non-nil interface.
	var polisher optimizer.ExplanationPolisher
	if geminiClient != nil {
		polisher = geminiClient
	}

	optimizerUseCase := optimizer.NewUseCase(
		catalogUseCase,
		bookingRepo,
		optimizer.NewCardinalitySolver(),
		polisher,
		weights,
		travel,
		cfg.Optimizer.MaxTopK,
	)

	bookingUseCase := booking.NewUseCase(bookingRepo, photographerRepo, logger)

	// Initialize handlers
	optimizerHandler := handler.NewOptimizerHandler(optimizerUseCase)
	bookingHandler := handler.NewBookingHandler(bookingUseCase)
	catalogHandler := handler.NewCatalogHandler(catalogUseCase)

	// Initialize router
	router := httpdelivery.NewRouter(
		optimizerHandler,
		bookingHandler,
		catalogHandler,
		logger,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, logger)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
		Logger: logger,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn().Err(err).Msg("error closing redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
