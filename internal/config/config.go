package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string
	JWTSecret string
	LogLevel  string
	LogFormat string
	BundleTTL time.Duration
}

// Load reads configuration from the environment with the same defaults the
// docker-compose setup expects.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "careerdisha")
	v.SetDefault("REDIS_URI", "localhost:6379")
	v.SetDefault("PORT", "8080")
	v.SetDefault("JWT_SECRET", "super-secret-key-change-in-production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("BUNDLE_CACHE_TTL", "10m")

	redisAddr := v.GetString("REDIS_URI")
	// Remove redis:// prefix if present
	redisAddr = strings.TrimPrefix(redisAddr, "redis://")

	return &Config{
		MongoURI:  v.GetString("MONGO_URI"),
		MongoDB:   v.GetString("MONGO_DB"),
		RedisAddr: redisAddr,
		HTTPPort:  v.GetString("PORT"),
		JWTSecret: v.GetString("JWT_SECRET"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		BundleTTL: v.GetDuration("BUNDLE_CACHE_TTL"),
	}
}
