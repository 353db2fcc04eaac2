package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisContextDB int    `mapstructure:"REDIS_CONTEXT_DB"`
	RedisWeightsDB int    `mapstructure:"REDIS_WEIGHTS_DB"`

	// MongoDB, used by the transcript archive.
	MongoURI    string `mapstructure:"MONGO_URI"`
	MongoDBName string `mapstructure:"MONGO_DB_NAME"`

	// OpenAI NLP classifier.
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel  string `mapstructure:"OPENAI_MODEL"`

	// Tmap transit APIs.
	TmapAPIKey   string `mapstructure:"TMAP_API_KEY"`
	TmapRouteURL string `mapstructure:"TMAP_ROUTE_URL"`
	TmapPOIURL   string `mapstructure:"TMAP_POI_URL"`

	// Timeout in seconds applied to every external call (Tmap, OpenAI).
	ExternalTimeoutSec int `mapstructure:"EXTERNAL_TIMEOUT_SEC"`

	// Session context TTL in minutes.
	ContextTTLMin int `mapstructure:"CONTEXT_TTL_MIN"`

	// Station accessibility datasets.
	ElevatorDataPath  string `mapstructure:"ELEVATOR_DATA_PATH"`
	EscalatorDataPath string `mapstructure:"ESCALATOR_DATA_PATH"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CONTEXT_DB", 0)
	viper.SetDefault("REDIS_WEIGHTS_DB", 1)
	viper.SetDefault("MONGO_URI", "")
	viper.SetDefault("MONGO_DB_NAME", "roadmate")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("TMAP_ROUTE_URL", "https://apis.openapi.sk.com/transit/routes")
	viper.SetDefault("TMAP_POI_URL", "https://apis.openapi.sk.com/tmap/pois")
	viper.SetDefault("EXTERNAL_TIMEOUT_SEC", 10)
	viper.SetDefault("CONTEXT_TTL_MIN", 360)
	viper.SetDefault("ELEVATOR_DATA_PATH", "data/elevator.csv")
	viper.SetDefault("ESCALATOR_DATA_PATH", "data/escalator.csv")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
