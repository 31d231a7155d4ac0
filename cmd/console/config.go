package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"delivery-admin/internal/session"

	"github.com/BurntSushi/toml"
)

const (
	cacheKindFile  = "file"
	cacheKindRedis = "redis"
)

type consoleConfig struct {
	APIURL             string        `toml:"api_url"`
	Language           string        `toml:"language"`
	RevalidateInterval time.Duration `toml:"revalidate_interval"`
	Timeout            time.Duration `toml:"timeout"`
	Cache              cacheConfig   `toml:"cache"`
}

type cacheConfig struct {
	Kind          string `toml:"kind"`
	Path          string `toml:"path"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	Key           string `toml:"key"`
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".delivery-admin"
	}
	return filepath.Join(home, ".delivery-admin")
}

func defaultConsoleConfig() consoleConfig {
	return consoleConfig{
		APIURL:             "http://localhost:8080",
		Language:           "en",
		RevalidateInterval: session.DefaultRevalidateInterval,
		Timeout:            10 * time.Second,
		Cache: cacheConfig{
			Kind:      cacheKindFile,
			Path:      filepath.Join(defaultConfigDir(), "session.yaml"),
			RedisAddr: "localhost:6379",
		},
	}
}

// loadConsoleConfig overlays the TOML file at path on the defaults. A missing
// file is not an error.
func loadConsoleConfig(path string) (consoleConfig, error) {
	cfg := defaultConsoleConfig()
	if path == "" {
		path = filepath.Join(defaultConfigDir(), "console.toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return consoleConfig{}, err
	}

	switch cfg.Cache.Kind {
	case cacheKindFile, cacheKindRedis:
	default:
		return consoleConfig{}, errors.New("cache.kind must be file or redis")
	}
	if cfg.RevalidateInterval <= 0 {
		cfg.RevalidateInterval = session.DefaultRevalidateInterval
	}
	return cfg, nil
}
