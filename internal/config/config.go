package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the connection and tailing settings oxtail reads from its
// TOML config file. A missing file yields pure defaults so the tool works
// against a local backend with zero setup.
type Config struct {
	URL          string
	Org          string
	Token        string
	Stream       string
	PollInterval time.Duration
	PageSize     int
	PruneHorizon time.Duration
}

const (
	defaultConfigPath   = "~/.config/oxtail/config.toml"
	defaultURL          = "http://127.0.0.1:5080"
	defaultOrg          = "default"
	defaultStream       = "default"
	defaultPollInterval = 2 * time.Second
	defaultPageSize     = 1000
	defaultPruneHorizon = time.Minute
)

// Load locates and parses the oxtail config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		URL          string `toml:"url"`
		Org          string `toml:"org"`
		Token        string `toml:"token"`
		Stream       string `toml:"stream"`
		PollInterval string `toml:"poll_interval"`
		PageSize     int    `toml:"page_size"`
		PruneHorizon string `toml:"prune_horizon"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.URL); v != "" {
		cfg.URL = v
	}
	if v := strings.TrimSpace(raw.Org); v != "" {
		cfg.Org = v
	}
	cfg.Token = strings.TrimSpace(raw.Token)
	if v := strings.TrimSpace(raw.Stream); v != "" {
		cfg.Stream = v
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if cfg.PollInterval, err = parseDuration("poll_interval", raw.PollInterval, defaultPollInterval); err != nil {
		return Config{}, err
	}
	if cfg.PruneHorizon, err = parseDuration("prune_horizon", raw.PruneHorizon, defaultPruneHorizon); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		URL:          defaultURL,
		Org:          defaultOrg,
		Stream:       defaultStream,
		PollInterval: defaultPollInterval,
		PageSize:     defaultPageSize,
		PruneHorizon: defaultPruneHorizon,
	}
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %q", key, value)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
