package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	// Comma-separated proxies whose X-Forwarded-For / X-Real-IP headers are honored.
	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"`

	// MongoDB.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Gemini.
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel      string `mapstructure:"GEMINI_MODEL"`
	AITimeoutSeconds int    `mapstructure:"AI_TIMEOUT_SECONDS"`

	// Matching.
	Currency              string  `mapstructure:"CURRENCY"`
	MinConfidence         float64 `mapstructure:"MIN_CONFIDENCE"`
	ClarifySkipConfidence float64 `mapstructure:"CLARIFY_SKIP_CONFIDENCE"`
	CandidateLimit        int     `mapstructure:"CANDIDATE_LIMIT"`
	RankRatingBand        float64 `mapstructure:"RANK_RATING_BAND"`
	RankReviewBand        int     `mapstructure:"RANK_REVIEW_BAND"`

	CategoryCacheTTLMinutes int `mapstructure:"CATEGORY_CACHE_TTL_MINUTES"`
	IdempotencyTTLMinutes   int `mapstructure:"IDEMPOTENCY_TTL_MINUTES"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("TRUSTED_PROXIES", "127.0.0.1,::1")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "fixmate")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 3)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("AI_TIMEOUT_SECONDS", 20)
	v.SetDefault("CURRENCY", "INR")
	v.SetDefault("MIN_CONFIDENCE", 0.6)
	v.SetDefault("CLARIFY_SKIP_CONFIDENCE", 0.7)
	v.SetDefault("CANDIDATE_LIMIT", 10)
	v.SetDefault("RANK_RATING_BAND", 0.2)
	v.SetDefault("RANK_REVIEW_BAND", 5)
	v.SetDefault("CATEGORY_CACHE_TTL_MINUTES", 15)
	v.SetDefault("IDEMPOTENCY_TTL_MINUTES", 60*24)
}

// Load reads config.yaml from "." or "./config" and overlays environment variables.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig populates AppConfig from the global viper instance.
func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// AITimeout is the bound applied to each text-generation call.
func (c Config) AITimeout() time.Duration {
	if c.AITimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(c.AITimeoutSeconds) * time.Second
}

// TrustedProxyList splits TrustedProxies; an empty setting trusts no proxy.
func (c Config) TrustedProxyList() []string {
	var proxies []string
	for _, p := range strings.Split(c.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
