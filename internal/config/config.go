// Package config loads daemon settings from defaults, an optional YAML file,
// and environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds all daemon settings.
type Config struct {
	// ListenAddr is the local address the daemon serves the UI and API on.
	ListenAddr string `koanf:"listen_addr"`
	// BackendURL is the base URL of the frame-extraction service; every API
	// call and image URL is resolved against it.
	BackendURL string `koanf:"backend_url"`
	// DBPath is the bbolt file holding cached frame records.
	DBPath string `koanf:"db_path"`
	// ExtractTimeoutSeconds bounds one extraction request; uploads of large
	// videos can take a while.
	ExtractTimeoutSeconds int `koanf:"extract_timeout_seconds"`
	// ProbeTimeoutSeconds bounds one cache liveness probe.
	ProbeTimeoutSeconds int `koanf:"probe_timeout_seconds"`
}

var defaults = Config{
	ListenAddr:            ":8090",
	BackendURL:            "http://127.0.0.1:8000",
	DBPath:                "frames.db",
	ExtractTimeoutSeconds: 300,
	ProbeTimeoutSeconds:   10,
}

// Load reads configuration from path (skipped when empty or missing), then
// applies environment overrides BACKEND_URL, LISTEN_ADDR and FRAMES_DB.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("FRAMES_DB"); v != "" {
		cfg.DBPath = v
	}

	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")
	if cfg.BackendURL == "" {
		cfg.BackendURL = defaults.BackendURL
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaults.ListenAddr
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaults.DBPath
	}
	if cfg.ExtractTimeoutSeconds < 1 {
		cfg.ExtractTimeoutSeconds = defaults.ExtractTimeoutSeconds
	}
	if cfg.ProbeTimeoutSeconds < 1 {
		cfg.ProbeTimeoutSeconds = defaults.ProbeTimeoutSeconds
	}

	return cfg, nil
}
