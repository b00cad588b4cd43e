package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	S3      S3Config
	Log     LogConfig
	CORS    CORSConfig
	Listing ListingConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds business token settings.
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	TokenExpiry time.Duration `mapstructure:"token_expiry"`
	Issuer      string        `mapstructure:"issuer"`
}

// S3Config holds listing image storage settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	PublicURL string `mapstructure:"public_url"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ListingConfig holds the payload builder defaults and upload limits.
type ListingConfig struct {
	DefaultCurrency string   `mapstructure:"default_currency"`
	DefaultCountry  string   `mapstructure:"default_country"`
	DefaultCity     string   `mapstructure:"default_city"`
	KnownCities     []string `mapstructure:"known_cities"`
	MaxImageSizeMB  int64    `mapstructure:"max_image_size_mb"`
	MaxImages       int      `mapstructure:"max_images"`
}

// MaxImageSizeBytes returns the image size limit in bytes.
func (l *ListingConfig) MaxImageSizeBytes() int64 {
	return l.MaxImageSizeMB * 1024 * 1024
}

// Load reads configuration from environment variables with the SERVICEMART_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SERVICEMART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "servicemart")
	v.SetDefault("db.password", "servicemart_secret")
	v.SetDefault("db.name", "servicemart_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.token_expiry", "24h")
	v.SetDefault("jwt.issuer", "servicemart")

	// S3 defaults
	v.SetDefault("s3.region", "eu-west-1")
	v.SetDefault("s3.bucket", "servicemart-listing-images")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.public_url", "")

	// Log defaults
	v.SetDefault("log.level", "debug")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Listing defaults
	v.SetDefault("listing.default_currency", "NGN")
	v.SetDefault("listing.default_country", "Nigeria")
	v.SetDefault("listing.default_city", "Lagos")
	v.SetDefault("listing.known_cities", "")
	v.SetDefault("listing.max_image_size_mb", 5)
	v.SetDefault("listing.max_images", 10)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "SERVICEMART_SERVER_PORT",
		"server.read_timeout":       "SERVICEMART_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "SERVICEMART_SERVER_WRITE_TIMEOUT",
		"server.environment":        "SERVICEMART_SERVER_ENVIRONMENT",
		"db.host":                   "SERVICEMART_DB_HOST",
		"db.port":                   "SERVICEMART_DB_PORT",
		"db.user":                   "SERVICEMART_DB_USER",
		"db.password":               "SERVICEMART_DB_PASSWORD",
		"db.name":                   "SERVICEMART_DB_NAME",
		"db.sslmode":                "SERVICEMART_DB_SSLMODE",
		"db.max_open":               "SERVICEMART_DB_MAX_OPEN",
		"db.max_idle":               "SERVICEMART_DB_MAX_IDLE",
		"jwt.secret":                "SERVICEMART_JWT_SECRET",
		"jwt.token_expiry":          "SERVICEMART_JWT_TOKEN_EXPIRY",
		"jwt.issuer":                "SERVICEMART_JWT_ISSUER",
		"s3.region":                 "SERVICEMART_S3_REGION",
		"s3.bucket":                 "SERVICEMART_S3_BUCKET",
		"s3.endpoint":               "SERVICEMART_S3_ENDPOINT",
		"s3.access_key":             "SERVICEMART_S3_ACCESS_KEY",
		"s3.secret_key":             "SERVICEMART_S3_SECRET_KEY",
		"s3.public_url":             "SERVICEMART_S3_PUBLIC_URL",
		"log.level":                 "SERVICEMART_LOG_LEVEL",
		"cors.allowed_origins":      "SERVICEMART_CORS_ALLOWED_ORIGINS",
		"listing.default_currency":  "SERVICEMART_LISTING_DEFAULT_CURRENCY",
		"listing.default_country":   "SERVICEMART_LISTING_DEFAULT_COUNTRY",
		"listing.default_city":      "SERVICEMART_LISTING_DEFAULT_CITY",
		"listing.known_cities":      "SERVICEMART_LISTING_KNOWN_CITIES",
		"listing.max_image_size_mb": "SERVICEMART_LISTING_MAX_IMAGE_SIZE_MB",
		"listing.max_images":        "SERVICEMART_LISTING_MAX_IMAGES",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if SERVICEMART_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SERVICEMART_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:      v.GetString("jwt.secret"),
		TokenExpiry: v.GetDuration("jwt.token_expiry"),
		Issuer:      v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
		PublicURL: v.GetString("s3.public_url"),
	}
	cfg.Log = LogConfig{
		Level: v.GetString("log.level"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Listing = ListingConfig{
		DefaultCurrency: v.GetString("listing.default_currency"),
		DefaultCountry:  v.GetString("listing.default_country"),
		DefaultCity:     v.GetString("listing.default_city"),
		KnownCities:     splitList(v.GetString("listing.known_cities")),
		MaxImageSizeMB:  v.GetInt64("listing.max_image_size_mb"),
		MaxImages:       v.GetInt("listing.max_images"),
	}

	if cfg.Listing.MaxImageSizeMB <= 0 {
		return nil, fmt.Errorf("listing.max_image_size_mb must be positive, got %d", cfg.Listing.MaxImageSizeMB)
	}

	return cfg, nil
}

// splitList parses a comma-separated env value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
