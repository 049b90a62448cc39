package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// DevJWTSecret is the signing secret used in dev mode when none is configured.
// It is public and must never sign production tokens.
const DevJWTSecret = "lifecover-insecure-development-secret"

// MinProdSecretLength is the shortest signing secret accepted in prod mode
const MinProdSecretLength = 32

// Config holds all configuration for the application
type Config struct {
	AppMode        string
	Port           string
	AllowedOrigins string
	Database       DatabaseConfig
	JWT            JWTConfig
	Security       SecurityConfig
	Redis          RedisConfig
	Retention      RetentionConfig
	Log            LogConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string // mysql, postgres or memory
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret       string
	TokenTTLDays int
}

// TokenTTL returns the session token lifetime
func (j JWTConfig) TokenTTL() time.Duration {
	return time.Duration(j.TokenTTLDays) * 24 * time.Hour
}

// SecurityConfig holds password hashing configuration
type SecurityConfig struct {
	BcryptCost          int
	MaxConcurrentHashes int
}

// RedisConfig holds the submission cache configuration; empty Addr disables it
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled reports whether a redis cache is configured
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// RetentionConfig controls the submission purge job
type RetentionConfig struct {
	Days     int
	Schedule string
}

// LogConfig controls the zap logger
type LogConfig struct {
	JSON  bool
	Debug bool
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config, err := FromViper(v)
	if err != nil {
		return nil, err
	}

	// Set global config
	AppConfig = config
	return config, nil
}

// FromViper builds and validates a Config from an already populated viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	// Trim spaces for Windows compatibility
	appMode := strings.TrimSpace(v.GetString("APP_MODE"))
	if appMode == "" {
		appMode = "dev"
	}
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:        appMode,
		Port:           v.GetString("PORT"),
		AllowedOrigins: strings.TrimSpace(v.GetString("ALLOWED_ORIGINS")),
		Database:       loadDatabaseConfig(v, appMode),
		JWT:            loadJWTConfig(v, appMode),
		Security:       loadSecurityConfig(v),
		Redis:          loadRedisConfig(v),
		Retention:      loadRetentionConfig(v),
		Log: LogConfig{
			JSON:  v.GetBool("LOG_JSON"),
			Debug: v.GetBool("LOG_DEBUG"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_MODE", "dev")
	v.SetDefault("PORT", "3000")
	v.SetDefault("TOKEN_TTL_DAYS", 7)
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("MAX_CONCURRENT_HASHES", 0)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL_MINUTES", 60)
	v.SetDefault("SUBMISSION_RETENTION_DAYS", 0)
	v.SetDefault("SUBMISSION_RETENTION_SCHEDULE", "@daily")
}

// prefix returns the env prefix for mode-specific keys
func prefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(v *viper.Viper, mode string) DatabaseConfig {
	p := prefix(mode)
	driver := strings.ToLower(getString(v, p+"DB_DRIVER", "mysql"))

	defaultPort := "3306"
	if driver == "postgres" {
		defaultPort = "5432"
	}

	return DatabaseConfig{
		Driver:   driver,
		Host:     getString(v, p+"DB_HOST", "localhost"),
		Port:     getString(v, p+"DB_PORT", defaultPort),
		User:     getString(v, p+"DB_USER", "root"),
		Password: getString(v, p+"DB_PASS", ""),
		DBName:   getString(v, p+"DB_NAME", "lifecover"),
		SSLMode:  getString(v, p+"DB_SSLMODE", "disable"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(v *viper.Viper, mode string) JWTConfig {
	return JWTConfig{
		Secret:       strings.TrimSpace(v.GetString(prefix(mode) + "JWT_SECRET")),
		TokenTTLDays: v.GetInt("TOKEN_TTL_DAYS"),
	}
}

func loadSecurityConfig(v *viper.Viper) SecurityConfig {
	return SecurityConfig{
		BcryptCost:          v.GetInt("BCRYPT_COST"),
		MaxConcurrentHashes: v.GetInt("MAX_CONCURRENT_HASHES"),
	}
}

func loadRedisConfig(v *viper.Viper) RedisConfig {
	return RedisConfig{
		Addr:     v.GetString("REDIS_ADDR"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
		TTL:      time.Duration(v.GetInt("CACHE_TTL_MINUTES")) * time.Minute,
	}
}

func loadRetentionConfig(v *viper.Viper) RetentionConfig {
	return RetentionConfig{
		Days:     v.GetInt("SUBMISSION_RETENTION_DAYS"),
		Schedule: v.GetString("SUBMISSION_RETENTION_SCHEDULE"),
	}
}

// getString gets a string key with a fallback for empty values
func getString(v *viper.Viper, key, defaultValue string) string {
	if value := strings.TrimSpace(v.GetString(key)); value != "" {
		return value
	}
	return defaultValue
}

// Validate fails fast on settings the server must not start with.
// In dev mode a missing signing secret falls back to DevJWTSecret.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres", "memory":
	default:
		return fmt.Errorf("invalid DB_DRIVER: '%s' (must be 'mysql', 'postgres' or 'memory')", c.Database.Driver)
	}

	if c.JWT.Secret == "" {
		if c.IsProd() {
			return errors.New("PROD_JWT_SECRET is required in prod mode")
		}
		log.Println("⚠️ DEV_JWT_SECRET not set, using the insecure development secret")
		c.JWT.Secret = DevJWTSecret
	}
	if c.IsProd() {
		if c.JWT.Secret == DevJWTSecret {
			return errors.New("PROD_JWT_SECRET must not be the development secret")
		}
		if len(c.JWT.Secret) < MinProdSecretLength {
			return fmt.Errorf("PROD_JWT_SECRET must be at least %d bytes", MinProdSecretLength)
		}
		if c.Database.Driver == "memory" {
			return errors.New("memory DB_DRIVER is not allowed in prod mode")
		}
	}

	if c.JWT.TokenTTLDays <= 0 {
		return fmt.Errorf("invalid TOKEN_TTL_DAYS: %d", c.JWT.TokenTTLDays)
	}
	if c.Security.BcryptCost < bcrypt.MinCost || c.Security.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("invalid BCRYPT_COST: %d (must be between %d and %d)",
			c.Security.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Retention.Days < 0 {
		return fmt.Errorf("invalid SUBMISSION_RETENTION_DAYS: %d", c.Retention.Days)
	}
	return nil
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := c.AllowedOrigins
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origin
		return "https://lifecover.app"
	}
	return origins
}
