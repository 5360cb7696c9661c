package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the generator profile. Everything has a working default; a
// profile file only overrides what it names.
type Config struct {
	// WorkDir receives chart artifacts while a generation runs; empty
	// means the system temp directory.
	WorkDir string       `mapstructure:"work_dir"`
	Charts  ChartsConfig `mapstructure:"charts"`
	Server  ServerConfig `mapstructure:"server"`
}

type ChartsConfig struct {
	PieWidth  int `mapstructure:"pie_width"`
	PieHeight int `mapstructure:"pie_height"`
	BarWidth  int `mapstructure:"bar_width"`
	BarHeight int `mapstructure:"bar_height"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

func Default() *Config {
	return &Config{
		Charts: ChartsConfig{
			PieWidth:  640,
			PieHeight: 480,
			BarWidth:  860,
			BarHeight: 420,
		},
		Server: ServerConfig{Addr: "localhost:8080"},
	}
}

// LoadConfig loads the profile at profilePath over the defaults.
func LoadConfig(profilePath string) (*Config, error) {
	cfg := Default()
	if profilePath == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
