package config

import (
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig failed validation: %v", err)
	}
}

func TestDefaultConfigConstants(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Campaigns) != 2 {
		t.Fatalf("default campaigns = %d, want 2", len(cfg.Campaigns))
	}

	a := cfg.Campaigns[0]
	if a.Scale != 2000 || a.Rate != 0.0003 || a.MeanDailyReturn != 0.15 || a.ReturnStdDev != 0.02 {
		t.Fatalf("campaign A defaults = %+v", a)
	}

	b := cfg.Campaigns[1]
	if b.Scale != 1500 || b.Rate != 0.0004 || b.MeanDailyReturn != 0.10 || b.ReturnStdDev != 0.02 {
		t.Fatalf("campaign B defaults = %+v", b)
	}

	if cfg.Samples.Count != 100 || cfg.Samples.Seed != 42 {
		t.Fatalf("sample defaults = %+v", cfg.Samples)
	}
	if cfg.Forecast.HorizonMonths != 12 {
		t.Fatalf("forecast horizon = %d, want 12", cfg.Forecast.HorizonMonths)
	}
	if cfg.Output.SignificanceAlpha != 0.05 {
		t.Fatalf("significance alpha = %v, want 0.05", cfg.Output.SignificanceAlpha)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"one campaign", func(c *Config) { c.Campaigns = c.Campaigns[:1] }},
		{"empty name", func(c *Config) { c.Campaigns[0].Name = "" }},
		{"zero scale", func(c *Config) { c.Campaigns[0].Scale = 0 }},
		{"negative rate", func(c *Config) { c.Campaigns[1].Rate = -0.0001 }},
		{"negative std dev", func(c *Config) { c.Campaigns[1].ReturnStdDev = -1 }},
		{"negative sample count", func(c *Config) { c.Samples.Count = -5 }},
		{"zero horizon", func(c *Config) { c.Forecast.HorizonMonths = 0 }},
		{"alpha too large", func(c *Config) { c.Output.SignificanceAlpha = 1.5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate accepted an invalid config")
			}
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if len(cfg.Campaigns) != 2 || cfg.Samples.Seed != 42 {
		t.Fatalf("Load without file did not return defaults: %+v", cfg)
	}
	if Exists() {
		t.Fatal("Exists() = true for missing config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Campaigns[0].Name = "Search"
	cfg.Campaigns[1].Name = "Social"
	cfg.Samples.Seed = 7
	cfg.Forecast.HorizonMonths = 6

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if got.Campaigns[0].Name != "Search" || got.Campaigns[1].Name != "Social" {
		t.Fatalf("campaign names not preserved: %+v", got.Campaigns)
	}
	if got.Samples.Seed != 7 || got.Forecast.HorizonMonths != 6 {
		t.Fatalf("settings not preserved: samples=%+v forecast=%+v", got.Samples, got.Forecast)
	}
}
