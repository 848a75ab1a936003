package analytics

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config tunes the engine's models and lookback windows. Zero values are
// replaced with the defaults below so an empty config file still works.
type Config struct {
	Seed          int64   `mapstructure:"seed"`
	Trees         int     `mapstructure:"trees"`
	Contamination float64 `mapstructure:"contamination"`

	RevenueLookbackDays  int `mapstructure:"revenue_lookback_days"`
	CategoryLookbackDays int `mapstructure:"category_lookback_days"`
	DemandLookbackDays   int `mapstructure:"demand_lookback_days"`
	PricingLookbackDays  int `mapstructure:"pricing_lookback_days"`
	MarginLookbackDays   int `mapstructure:"margin_lookback_days"`
	AnomalyLookbackDays  int `mapstructure:"anomaly_lookback_days"`
	StockLookbackDays    int `mapstructure:"stock_lookback_days"`
}

func DefaultConfig() Config {
	return Config{
		Seed:                 42,
		Trees:                100,
		Contamination:        0.1,
		RevenueLookbackDays:  365,
		CategoryLookbackDays: 30,
		DemandLookbackDays:   90,
		PricingLookbackDays:  60,
		MarginLookbackDays:   30,
		AnomalyLookbackDays:  30,
		StockLookbackDays:    30,
	}
}

// LoadConfig reads engine settings from a YAML file, falling back to
// defaults for anything the file leaves out.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := DefaultConfig()
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("trees", defaults.Trees)
	v.SetDefault("contamination", defaults.Contamination)
	v.SetDefault("revenue_lookback_days", defaults.RevenueLookbackDays)
	v.SetDefault("category_lookback_days", defaults.CategoryLookbackDays)
	v.SetDefault("demand_lookback_days", defaults.DemandLookbackDays)
	v.SetDefault("pricing_lookback_days", defaults.PricingLookbackDays)
	v.SetDefault("margin_lookback_days", defaults.MarginLookbackDays)
	v.SetDefault("anomaly_lookback_days", defaults.AnomalyLookbackDays)
	v.SetDefault("stock_lookback_days", defaults.StockLookbackDays)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read engine config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine config: %w", err)
	}
	return &cfg, nil
}
