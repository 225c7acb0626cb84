package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Upstream salon API
	UpstreamBaseURL  string `mapstructure:"UPSTREAM_BASE_URL"`
	UpstreamAPIToken string `mapstructure:"UPSTREAM_API_TOKEN"`
	UpstreamTimeout  time.Duration

	// Dashboard defaults
	DefaultSede string `mapstructure:"DEFAULT_SEDE"`

	// Session auth
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AdminUser         string `mapstructure:"ADMIN_USER"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	// Analytics
	PosthogAPIKey string `mapstructure:"POSTHOG_API_KEY"`

	// Global rate limit, limiter format (e.g. "100-M")
	RateLimit string `mapstructure:"RATE_LIMIT"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:5000")
	viper.SetDefault("UPSTREAM_API_TOKEN", "")
	viper.SetDefault("UPSTREAM_TIMEOUT", "15s")
	viper.SetDefault("DEFAULT_SEDE", "Principal")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "salon-dashboard-app")
	viper.SetDefault("ADMIN_USER", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.UpstreamBaseURL = viper.GetString("UPSTREAM_BASE_URL")
	if cfg.UpstreamBaseURL == "" {
		log.Println("Warning: UPSTREAM_BASE_URL environment variable not set.")
	}

	cfg.UpstreamAPIToken = viper.GetString("UPSTREAM_API_TOKEN")
	if cfg.UpstreamAPIToken == "" {
		log.Println("Warning: UPSTREAM_API_TOKEN not set. Upstream requests will be unauthenticated.")
	}

	upstreamTimeoutStr := viper.GetString("UPSTREAM_TIMEOUT")
	upstreamTimeout, err := time.ParseDuration(upstreamTimeoutStr)
	if err != nil {
		upstreamTimeout = 15 * time.Second
		if upstreamTimeoutStr != "" {
			log.Printf("Warning: Invalid value for UPSTREAM_TIMEOUT ('%s'). Defaulting to %s.\n", upstreamTimeoutStr, upstreamTimeout.String())
		}
	}
	cfg.UpstreamTimeout = upstreamTimeout

	cfg.DefaultSede = viper.GetString("DEFAULT_SEDE")
	if cfg.DefaultSede == "" {
		cfg.DefaultSede = "Principal"
		log.Printf("Warning: DEFAULT_SEDE not set. Defaulting to %s.\n", cfg.DefaultSede)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "salon-dashboard-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.AdminUser = viper.GetString("ADMIN_USER")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Login will reject all credentials.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	return cfg, nil
}
