package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Api      Api      `yaml:"api"`
	Events   Events   `yaml:"events"`
	LocalApi LocalApi `yaml:"local_api"`
	Log      Log      `yaml:"log"`
}

type Api struct {
	BaseURL         string `yaml:"base_url"`
	TokenFile       string `yaml:"token_file"`
	HistoryPageSize int    `yaml:"history_page_size"` // messages per scrollback fetch
}

type Events struct {
	URL            string        `yaml:"url"`
	ReconnectDelay time.Duration `yaml:"reconnect_delay"`
}

type LocalApi struct {
	Addr string `yaml:"addr"` // debug/metrics listener, empty disables it
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configPath string) *Config {
	var cfg Config
	mustLoadPath(configPath, &cfg)

	if cfg.Api.HistoryPageSize <= 0 {
		cfg.Api.HistoryPageSize = 100
	}
	if cfg.Events.ReconnectDelay <= 0 {
		cfg.Events.ReconnectDelay = 5 * time.Second
	}
	return &cfg
}
