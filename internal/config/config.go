package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config carries every knob the desk used to hard-code: the upstream feed,
// the icon template, the preferred starting pair, and the runtime addresses.
// Tests inject synthetic values instead of reaching for module globals.
type Config struct {
	PricesURL     string        `yaml:"prices_url" env:"SWAPDESK_PRICES_URL" env-default:"https://interview.switcheo.com/prices.json"`
	IconBaseURL   string        `yaml:"icon_base_url" env:"SWAPDESK_ICON_BASE_URL" env-default:"https://raw.githubusercontent.com/Switcheo/token-icons/main/tokens"`
	PreferredFrom string        `yaml:"preferred_from" env:"SWAPDESK_PREFERRED_FROM" env-default:"ETH"`
	PreferredTo   string        `yaml:"preferred_to" env:"SWAPDESK_PREFERRED_TO" env-default:"SWTH"`
	ListenAddr    string        `yaml:"listen_addr" env:"SWAPDESK_LISTEN_ADDR" env-default:"127.0.0.1:8890"`
	DBPath        string        `yaml:"db_path" env:"SWAPDESK_DB" env-default:"swapdesk.db"`
	FetchTimeout  time.Duration `yaml:"fetch_timeout" env:"SWAPDESK_FETCH_TIMEOUT" env-default:"15s"`
}

// Load reads configuration from the YAML file named by SWAPDESK_CONFIG when
// set, otherwise from the environment with defaults.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("SWAPDESK_CONFIG"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}
	return &cfg, nil
}
