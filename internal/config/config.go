package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"ordina/internal/domain"
)

// Config is the root configuration structure, mirroring config.yaml.
type Config struct {
	Storage    StorageConfig                 `yaml:"storage"`
	Classifier ClassifierConfig              `yaml:"classifier"`
	Cache      CacheConfig                   `yaml:"cache"`
	Sorter     SorterConfig                  `yaml:"sorter"`
	Folders    map[string]domain.ProfileRule `yaml:"folders"`
}

// StorageConfig selects and configures the file backend.
type StorageConfig struct {
	Backend string       `yaml:"backend"` // "drive", "s3", or "local"
	Drive   DriveConfig  `yaml:"drive"`
	S3      S3Config     `yaml:"s3"`
	Local   LocalConfig  `yaml:"local"`
}

// DriveConfig configures the Google Drive backend. Authorization happens
// outside the sorter: point it at service-account credentials.
type DriveConfig struct {
	CredentialsFile string `yaml:"credentials_file"` // supports ${VAR}
}

// S3Config configures the S3/MinIO backend.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"` // supports ${VAR}
	SecretKey string `yaml:"secret_key"` // supports ${VAR}
	UseSSL    bool   `yaml:"use_ssl"`
}

// LocalConfig configures the local-directory backend.
type LocalConfig struct {
	Path string `yaml:"path"`
}

// ClassifierConfig configures the remote label-inference model.
type ClassifierConfig struct {
	Model         string        `yaml:"model"`
	APIKey        string        `yaml:"api_key"` // supports ${VAR}
	BaseURL       string        `yaml:"base_url"`
	Timeout       time.Duration `yaml:"timeout"`
	VisionModel   string        `yaml:"vision_model"`    // "" disables image OCR
	MaxImageWidth int           `yaml:"max_image_width"` // downscale before OCR
	JPEGQuality   int           `yaml:"jpeg_quality"`
}

// CacheConfig selects the classification cache store.
type CacheConfig struct {
	Backend string      `yaml:"backend"` // "sqlite" (default), "redis", or "none"
	Path    string      `yaml:"path"`    // sqlite database file
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig configures the shared redis cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"` // supports ${VAR}
	DB       int    `yaml:"db"`
}

// SorterConfig holds the pipeline tuning knobs; zero values take the
// pipeline defaults.
type SorterConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	MaxAICalls          int     `yaml:"max_ai_calls"`
	MaxBytes            int64   `yaml:"max_bytes"`
	TextMax             int     `yaml:"text_max"`
	Concurrency         int     `yaml:"concurrency"`
	AICallsPerMinute    int     `yaml:"ai_calls_per_minute"`
}

// DefaultPath returns the config path from the ORDINA_CONFIG env var,
// falling back to ~/.config/ordina/config.yaml.
func DefaultPath() string {
	if env := os.Getenv("ORDINA_CONFIG"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "ordina", "config.yaml")
}

// Load reads the YAML file, expands ${VAR} references from the
// environment, and validates the result.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found at: %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = "local"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "sqlite"
	}
	if c.Cache.Backend == "sqlite" && c.Cache.Path == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			c.Cache.Path = filepath.Join(dir, "ordina", "cache.db")
		} else {
			c.Cache.Path = "ordina-cache.db"
		}
	}
	if c.Classifier.Model == "" {
		c.Classifier.Model = "gpt-4o-mini"
	}
	if c.Classifier.Timeout == 0 {
		c.Classifier.Timeout = 60 * time.Second
	}
	if c.Classifier.MaxImageWidth == 0 {
		c.Classifier.MaxImageWidth = 1280
	}
	if c.Classifier.JPEGQuality == 0 {
		c.Classifier.JPEGQuality = 80
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case "local":
		if c.Storage.Local.Path == "" {
			return fmt.Errorf("storage.local.path is required")
		}
	case "s3":
		if c.Storage.S3.Endpoint == "" {
			return fmt.Errorf("storage.s3.endpoint is required")
		}
		if c.Storage.S3.Bucket == "" {
			return fmt.Errorf("storage.s3.bucket is required")
		}
	case "drive":
		if c.Storage.Drive.CredentialsFile == "" {
			return fmt.Errorf("storage.drive.credentials_file is required")
		}
	default:
		return fmt.Errorf("unknown storage backend: %q", c.Storage.Backend)
	}

	switch c.Cache.Backend {
	case "sqlite", "none":
	case "redis":
		if c.Cache.Redis.Addr == "" {
			return fmt.Errorf("cache.redis.addr is required")
		}
	default:
		return fmt.Errorf("unknown cache backend: %q", c.Cache.Backend)
	}

	return nil
}
