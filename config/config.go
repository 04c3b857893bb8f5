package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application-level configuration
type Config struct {
	// Input
	DatasetPath string `envconfig:"DATASET_PATH" default:"vehicles1.csv"`
	HeadRows    int    `envconfig:"HEAD_ROWS" default:"5"`
	TopCounts   int    `envconfig:"TOP_COUNTS" default:"15"`

	// Keep the empty-string normalization for later stages instead of only printing it
	PersistNormalized bool `envconfig:"PERSIST_NORMALIZED" default:"false"`

	// Output
	CleanCSVPath string `envconfig:"CLEAN_CSV_PATH" default:"output/vehicles_clean.csv"`
	XLSXFilePath string `envconfig:"XLSX_FILE_PATH" default:"output/vehicles_summary.xlsx"`
	PlotDir      string `envconfig:"PLOT_DIR" default:"output/plots"`
	HTMLFilePath string `envconfig:"HTML_FILE_PATH" default:"output/report.html"`

	// PDF rendering through headless Chrome
	PDFReport     bool          `envconfig:"PDF_REPORT" default:"false"`
	PDFFilePath   string        `envconfig:"PDF_FILE_PATH" default:"output/report.pdf"`
	RenderTimeout time.Duration `envconfig:"RENDER_TIMEOUT" default:"2m"`
	MaxRetries    int           `envconfig:"MAX_RETRIES" default:"3"`
	RetryBackoff  time.Duration `envconfig:"RETRY_BACKOFF" default:"1s"`

	// Database; export is skipped when empty
	DatabaseURL string `envconfig:"DATABASE_URL"`
	TableName   string `envconfig:"TABLE_NAME" default:"vehicles_clean"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables or falls back to defaults
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DatasetPath == "" {
		return fmt.Errorf("DATASET_PATH must not be empty")
	}
	if c.HeadRows < 0 {
		return fmt.Errorf("HEAD_ROWS must be >= 0, got %d", c.HeadRows)
	}
	if c.TopCounts < 0 {
		return fmt.Errorf("TOP_COUNTS must be >= 0, got %d", c.TopCounts)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("MAX_RETRIES must be >= 1, got %d", c.MaxRetries)
	}
	if c.DatabaseURL != "" && c.TableName == "" {
		return fmt.Errorf("TABLE_NAME must be set when DATABASE_URL is configured")
	}
	return nil
}
