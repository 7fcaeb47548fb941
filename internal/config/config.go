// Package config holds the adspend campaign and sampling configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all adspend configuration.
type Config struct {
	Campaigns []CampaignConfig `toml:"campaign"`
	Samples   SamplesConfig    `toml:"samples"`
	Forecast  ForecastConfig   `toml:"forecast"`
	Output    OutputConfig     `toml:"output"`
}

// CampaignConfig holds the response-curve and historical-performance
// parameters for one campaign.
type CampaignConfig struct {
	Name string `toml:"name"`
	// Scale is the ceiling return the campaign saturates toward.
	Scale float64 `toml:"scale"`
	// Rate controls how quickly additional spend saturates.
	Rate float64 `toml:"rate"`
	// MeanDailyReturn and ReturnStdDev parameterize the synthetic
	// historical return-rate series used by the significance test.
	MeanDailyReturn float64 `toml:"mean_daily_return"`
	ReturnStdDev    float64 `toml:"return_std_dev"`
}

// SamplesConfig controls synthetic performance sample generation.
type SamplesConfig struct {
	Count int    `toml:"count"`
	Seed  uint64 `toml:"seed"`
}

// ForecastConfig holds the revenue projection horizon.
type ForecastConfig struct {
	HorizonMonths int `toml:"horizon_months"`
}

// OutputConfig holds reporting thresholds.
type OutputConfig struct {
	SignificanceAlpha float64 `toml:"significance_alpha"`
}

// DefaultConfig returns the stock two-campaign setup.
func DefaultConfig() Config {
	return Config{
		Campaigns: []CampaignConfig{
			{
				Name:            "Campaign A",
				Scale:           2000,
				Rate:            0.0003,
				MeanDailyReturn: 0.15,
				ReturnStdDev:    0.02,
			},
			{
				Name:            "Campaign B",
				Scale:           1500,
				Rate:            0.0004,
				MeanDailyReturn: 0.10,
				ReturnStdDev:    0.02,
			},
		},
		Samples: SamplesConfig{
			Count: 100,
			Seed:  42,
		},
		Forecast: ForecastConfig{
			HorizonMonths: 12,
		},
		Output: OutputConfig{
			SignificanceAlpha: 0.05,
		},
	}
}

// Validate checks the configuration for values the pipeline cannot work with.
func (c Config) Validate() error {
	if len(c.Campaigns) < 2 {
		return fmt.Errorf("need at least 2 campaigns, have %d", len(c.Campaigns))
	}
	for _, cc := range c.Campaigns {
		if cc.Name == "" {
			return fmt.Errorf("campaign with empty name")
		}
		if cc.Scale <= 0 {
			return fmt.Errorf("campaign %s: scale must be positive, got %v", cc.Name, cc.Scale)
		}
		if cc.Rate <= 0 {
			return fmt.Errorf("campaign %s: rate must be positive, got %v", cc.Name, cc.Rate)
		}
		if cc.ReturnStdDev < 0 {
			return fmt.Errorf("campaign %s: return std dev must be non-negative, got %v", cc.Name, cc.ReturnStdDev)
		}
	}
	if c.Samples.Count < 0 {
		return fmt.Errorf("sample count must be non-negative, got %d", c.Samples.Count)
	}
	if c.Forecast.HorizonMonths <= 0 {
		return fmt.Errorf("forecast horizon must be positive, got %d", c.Forecast.HorizonMonths)
	}
	if c.Output.SignificanceAlpha <= 0 || c.Output.SignificanceAlpha >= 1 {
		return fmt.Errorf("significance alpha must be in (0, 1), got %v", c.Output.SignificanceAlpha)
	}
	return nil
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "adspend")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "adspend")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	// A config file replaces the default campaign list wholesale.
	cfg.Campaigns = nil
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.Campaigns) == 0 {
		cfg.Campaigns = DefaultConfig().Campaigns
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
