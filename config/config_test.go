package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMissingResourceURL(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingResourceStorageURL)

	cfg = &Config{ResourceStorageURL: "   "}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingResourceStorageURL)
}

func TestValidateNormalizes(t *testing.T) {
	cfg := &Config{
		ResourceStorageURL: "https://cdn.layerswap.io",
		APIBaseURL:         "https://api.layerswap.io/",
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://cdn.layerswap.io/", cfg.ResourceStorageURL)
	assert.Equal(t, "https://api.layerswap.io", cfg.APIBaseURL)

	cfg = &Config{ResourceStorageURL: "https://storage.example.com/assets"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://storage.example.com/assets/", cfg.ResourceStorageURL)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := &Config{ResourceStorageURL: "not a url"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{ResourceStorageURL: "https://cdn.layerswap.io/", CacheTTL: -time.Second}
	assert.Error(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LAYERSWAP_RESOURCE_STORAGE_URL", "https://cdn.layerswap.io")
	t.Setenv("LAYERSWAP_API_KEY", "secret")
	t.Setenv("LAYERSWAP_CACHE_TTL", "5m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.layerswap.io/", cfg.ResourceStorageURL)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
}

func TestLoadWithoutResourceURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LAYERSWAP_RESOURCE_STORAGE_URL", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingResourceStorageURL)
}
