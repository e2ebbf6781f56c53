package common

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Geocoder GeocoderConfig `yaml:"geocoder"`
	Crop     CropConfig     `yaml:"crop"`
}

// StoreConfig holds settings for the embedded sqlite store.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// GeocoderConfig holds settings for the geocoding client and service.
type GeocoderConfig struct {
	BaseURL        string        `yaml:"base_url"`
	UserAgent      string        `yaml:"user_agent"`
	Timeout        time.Duration `yaml:"timeout"`
	BatchSize      int           `yaml:"batch_size"`
	BatchDelay     time.Duration `yaml:"batch_delay"`
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
}

// CropConfig holds settings for stamp image cropping.
type CropConfig struct {
	OutputDir   string `yaml:"output_dir"`
	JPEGQuality int    `yaml:"jpeg_quality"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: getEnv("STORE_PATH", "passport.db"),
		},
		Geocoder: GeocoderConfig{
			BaseURL:        getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
			UserAgent:      getEnv("GEOCODER_USER_AGENT", "workshipai/1.0"),
			Timeout:        getEnvAsDuration("GEOCODER_TIMEOUT", 30*time.Second),
			BatchSize:      getEnvAsInt("GEOCODER_BATCH_SIZE", 5),
			BatchDelay:     getEnvAsDuration("GEOCODER_BATCH_DELAY", time.Second),
			MaxAttempts:    getEnvAsInt("GEOCODER_MAX_ATTEMPTS", 3),
			InitialBackoff: getEnvAsDuration("GEOCODER_INITIAL_BACKOFF", time.Second),
			CacheTTL:       getEnvAsDuration("GEOCODER_CACHE_TTL", 30*24*time.Hour),
		},
		Crop: CropConfig{
			OutputDir:   getEnv("CROP_OUTPUT_DIR", "./uploads"),
			JPEGQuality: getEnvAsInt("CROP_JPEG_QUALITY", 90),
		},
	}
}

// ApplyFile overlays values from a YAML config file onto the config.
// Missing file is not an error; env/default values stay in effect.
func (c *Config) ApplyFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return WrapError(err, "read config file")
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return WrapError(err, "parse config file")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Geocoder.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "GEOCODER_URL is required", ErrInvalidInput)
	}
	if c.Geocoder.BatchSize <= 0 {
		return NewAppError("CONFIG_ERROR", "GEOCODER_BATCH_SIZE must be positive", ErrInvalidInput)
	}
	if c.Geocoder.MaxAttempts <= 0 {
		return NewAppError("CONFIG_ERROR", "GEOCODER_MAX_ATTEMPTS must be positive", ErrInvalidInput)
	}
	return nil
}
