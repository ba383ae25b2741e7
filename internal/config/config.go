package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/salesops/pulse/internal/classify"
	"github.com/salesops/pulse/internal/kpi"
	"github.com/salesops/pulse/internal/signal"
	"github.com/salesops/pulse/internal/window"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Config struct {
	Timeframe  string          `yaml:"timeframe,omitempty"`
	MaxSignals int             `yaml:"max_signals,omitempty"`
	MaxCRMRows int             `yaml:"max_crm_rows,omitempty"`
	LateStages []string        `yaml:"late_stages,omitempty"`
	Tiers      *signal.Tiers   `yaml:"tiers,omitempty"`
	Rules      []classify.Rule `yaml:"rules,omitempty"`
}

// GetTimeframe resolves the configured timeframe, defaulting to week.
func (c *Config) GetTimeframe() window.Timeframe {
	return window.Parse(c.Timeframe)
}

// GetMaxSignals returns the ranked-signal limit, defaulting to 12.
func (c *Config) GetMaxSignals() int {
	if c.MaxSignals <= 0 {
		return signal.DefaultRankLimit
	}
	return c.MaxSignals
}

// GetMaxCRMRows returns the snapshot-row limit, defaulting to 8.
func (c *Config) GetMaxCRMRows() int {
	if c.MaxCRMRows <= 0 {
		return 8
	}
	return c.MaxCRMRows
}

func (c *Config) GetLateStages() []string {
	if len(c.LateStages) == 0 {
		return kpi.DefaultLateStages()
	}
	return c.LateStages
}

func (c *Config) GetTiers() signal.Tiers {
	if c.Tiers == nil {
		return signal.DefaultTiers()
	}
	return *c.Tiers
}

func (c *Config) GetRules() []classify.Rule {
	if len(c.Rules) == 0 {
		return classify.DefaultRules()
	}
	return c.Rules
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "pulse", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	switch cfg.Timeframe {
	case "", string(window.Week), string(window.Month):
	default:
		return fmt.Errorf("timeframe must be week or month, got %q", cfg.Timeframe)
	}
	for i, r := range cfg.Rules {
		if r.Tag == "" {
			return fmt.Errorf("rule %d: tag is required", i)
		}
		if len(r.Triggers) == 0 {
			return fmt.Errorf("rule %q: at least one trigger is required", r.Tag)
		}
	}
	if cfg.MaxSignals < 0 {
		return fmt.Errorf("max_signals must not be negative, got %d", cfg.MaxSignals)
	}
	if cfg.MaxCRMRows < 0 {
		return fmt.Errorf("max_crm_rows must not be negative, got %d", cfg.MaxCRMRows)
	}
	return nil
}
