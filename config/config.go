package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	Env     string `mapstructure:"ENV"`

	// Remote record service (MongoDB).
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DatabaseName  string `mapstructure:"DATABASE_NAME"`
	RemoteTimeout int    `mapstructure:"REMOTE_TIMEOUT_SECONDS"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Meeting-link capability.
	MeetAPIBaseURL string `mapstructure:"MEET_API_BASE_URL"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

// RemoteCallTimeout returns the bounded timeout applied to remote record
// service calls.
func (c Config) RemoteCallTimeout() time.Duration {
	return time.Duration(c.RemoteTimeout) * time.Second
}

// IsProduction checks if the environment is production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from a config file, environment variables, and
// defaults. The returned Config is passed to consumers explicitly; there is no
// package-level configuration state.
func Load() Config {
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "classcal")
	viper.SetDefault("REMOTE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("MEET_API_BASE_URL", "")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}
