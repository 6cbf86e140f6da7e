package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"signcraft/internal/config"
)

func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills fields a partial config file may omit.
func applyDefaults(cfg *config.Config) {
	if cfg.Business.Timezone == "" {
		cfg.Business.Timezone = "Asia/Kolkata"
	}
	if cfg.History.DefaultPageSize == 0 {
		cfg.History.DefaultPageSize = 15
	}
	if cfg.History.MaxPageSize == 0 {
		cfg.History.MaxPageSize = 100
	}
	if cfg.History.CacheCapacity == 0 {
		cfg.History.CacheCapacity = 8
	}
	if cfg.History.DayFetchLimit == 0 {
		cfg.History.DayFetchLimit = 1000
	}
	if cfg.Broker.Exchange == "" {
		cfg.Broker.Exchange = "orders.events"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
