package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicemart/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "NGN", cfg.Listing.DefaultCurrency)
	assert.Equal(t, "Nigeria", cfg.Listing.DefaultCountry)
	assert.Equal(t, "Lagos", cfg.Listing.DefaultCity)
	assert.Empty(t, cfg.Listing.KnownCities)
	assert.Equal(t, int64(5*1024*1024), cfg.Listing.MaxImageSizeBytes())
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVICEMART_LISTING_DEFAULT_CURRENCY", "GHS")
	t.Setenv("SERVICEMART_LISTING_KNOWN_CITIES", "Osu, Accra ,")
	t.Setenv("SERVICEMART_JWT_TOKEN_EXPIRY", "2h")
	t.Setenv("SERVICEMART_DB_PORT", "6543")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "GHS", cfg.Listing.DefaultCurrency)
	assert.Equal(t, []string{"Osu", "Accra"}, cfg.Listing.KnownCities)
	assert.Equal(t, 2*time.Hour, cfg.JWT.TokenExpiry)
	assert.Equal(t, 6543, cfg.DB.Port)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "9000")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)

	t.Setenv("SERVICEMART_SERVER_PORT", ":7000")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Port)
}

func TestLoad_RejectsNonPositiveImageLimit(t *testing.T) {
	t.Setenv("SERVICEMART_LISTING_MAX_IMAGE_SIZE_MB", "0")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	d := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", d.DSN())
}
