package config

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	Storage      StorageConfig
	Optimizer    OptimizerConfig
	Logging      LoggingConfig
	GeminiAPIKey string
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// StorageConfig selects the storage backend. "postgres" is the
// production backend; "memory" runs against in-process stores for demos
// and local development.
type StorageConfig struct {
	Type string
}

// OptimizerConfig carries the fixed scoring weights and travel-cost
// parameters. Weights must be non-negative and sum to 1.
type OptimizerConfig struct {
	RatingWeight     float64
	PriceWeight      float64
	TravelWeight     float64
	ExperienceWeight float64

	TravelBaseFee   float64
	TravelRatePerKm float64
	MaxTravelKm     float64 // 0 disables the travel bound

	MaxTopK int
}

type LoggingConfig struct {
	Level string
}

// Load loads configuration from environment variables or .env file
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Try to read from .env file, but don't fail if it doesn't exist
	_ = viper.ReadInConfig()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("STORAGE_TYPE", "postgres")
	viper.SetDefault("LOG_LEVEL", "info")

	// Default weight split: rating 35%, price 30%, experience 20%,
	// travel 15%.
	viper.SetDefault("OPT_RATING_WEIGHT", 0.35)
	viper.SetDefault("OPT_PRICE_WEIGHT", 0.30)
	viper.SetDefault("OPT_TRAVEL_WEIGHT", 0.15)
	viper.SetDefault("OPT_EXPERIENCE_WEIGHT", 0.20)
	viper.SetDefault("OPT_TRAVEL_BASE_FEE", 2000)
	viper.SetDefault("OPT_TRAVEL_RATE_PER_KM", 25)
	viper.SetDefault("OPT_MAX_TRAVEL_KM", 0)
	viper.SetDefault("OPT_MAX_TOP_K", 50)

	config := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("SERVER_HOST"),
			Port:         viper.GetInt("SERVER_PORT"),
			Env:          viper.GetString("ENV"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Storage: StorageConfig{
			Type: viper.GetString("STORAGE_TYPE"),
		},
		Optimizer: OptimizerConfig{
			RatingWeight:     viper.GetFloat64("OPT_RATING_WEIGHT"),
			PriceWeight:      viper.GetFloat64("OPT_PRICE_WEIGHT"),
			TravelWeight:     viper.GetFloat64("OPT_TRAVEL_WEIGHT"),
			ExperienceWeight: viper.GetFloat64("OPT_EXPERIENCE_WEIGHT"),
			TravelBaseFee:    viper.GetFloat64("OPT_TRAVEL_BASE_FEE"),
			TravelRatePerKm:  viper.GetFloat64("OPT_TRAVEL_RATE_PER_KM"),
			MaxTravelKm:      viper.GetFloat64("OPT_MAX_TRAVEL_KM"),
			MaxTopK:          viper.GetInt("OPT_MAX_TOP_K"),
		},
		Logging: LoggingConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
	}

	// Validate critical configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates critical configuration values
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("database name is required")
		}
	case "memory":
		// No database settings needed.
	default:
		return fmt.Errorf("storage type must be postgres or memory, got %q", c.Storage.Type)
	}

	return c.Optimizer.Validate()
}

func (c *OptimizerConfig) Validate() error {
	weights := []float64{c.RatingWeight, c.PriceWeight, c.TravelWeight, c.ExperienceWeight}
	sum := 0.0
	for _, w := range weights {
		if w < 0 {
			return fmt.Errorf("optimizer weights must be non-negative")
		}
		sum += w
	}
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("optimizer weights must sum to 1, got %g", sum)
	}
	if c.TravelBaseFee < 0 || c.TravelRatePerKm < 0 || c.MaxTravelKm < 0 {
		return fmt.Errorf("travel cost parameters must be non-negative")
	}
	if c.MaxTopK < 1 {
		return fmt.Errorf("optimizer max top_k must be at least 1")
	}
	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// GetAddr returns Redis address
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
