package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingResourceStorageURL is returned when no resource storage URL is configured
var ErrMissingResourceStorageURL = errors.New("resource storage URL is not set. Please set LAYERSWAP_RESOURCE_STORAGE_URL environment variable or add resource_storage_url to .layerswap.yaml")

const (
	DefaultAPIBaseURL = "https://api.layerswap.io"
	DefaultCacheTTL   = 60 * time.Second
)

// Config holds the application configuration
type Config struct {
	APIBaseURL         string
	ResourceStorageURL string
	APIKey             string
	CacheTTL           time.Duration
	CacheFile          string
}

// Load reads configuration from environment variables and config file
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".layerswap")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME")
	v.AddConfigPath(".")

	// Set default values
	v.SetDefault("api_base_url", DefaultAPIBaseURL)
	v.SetDefault("cache_ttl", DefaultCacheTTL)

	// Read from environment variables
	v.SetEnvPrefix("LAYERSWAP")
	v.AutomaticEnv()

	// Read config file (optional)
	_ = v.ReadInConfig()

	cfg := &Config{
		APIBaseURL:         v.GetString("api_base_url"),
		ResourceStorageURL: v.GetString("resource_storage_url"),
		APIKey:             v.GetString("api_key"),
		CacheTTL:           v.GetDuration("cache_ttl"),
		CacheFile:          v.GetString("cache_file"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and normalizes URLs.
// The resource storage URL always ends with a slash so paths can be appended to it.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ResourceStorageURL) == "" {
		return ErrMissingResourceStorageURL
	}

	u, err := url.Parse(strings.TrimSpace(c.ResourceStorageURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid resource storage URL %q", c.ResourceStorageURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	c.ResourceStorageURL = u.String()

	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")

	if c.CacheTTL < 0 {
		return fmt.Errorf("cache TTL cannot be negative: %s", c.CacheTTL)
	}

	return nil
}
