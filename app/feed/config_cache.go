package feed

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var ErrConfigNotFound = errors.New("feed config not found")

// ConfigCache holds the feed configurations of the feeds directory, keyed by feed name.
type ConfigCache struct {
	feedsDir string
	configs  map[string]*Config
	mu       sync.RWMutex
}

func NewConfigCache(feedsDir string) *ConfigCache {
	return &ConfigCache{
		feedsDir: feedsDir,
		configs:  make(map[string]*Config),
	}
}

// Run loads every *.yml file of the feeds directory. A missing directory is not an error.
func (cc *ConfigCache) Run() error {
	if _, err := os.Stat(cc.feedsDir); os.IsNotExist(err) {
		slog.Warn("Feeds directory does not exist", "dir", cc.feedsDir)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(cc.feedsDir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to list feed configs: %w", err)
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".yml")

		config, err := cc.LoadConfig(name)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}

		slog.Debug("Feed config loaded",
			"feed", name,
			"url", config.URL,
			"enabled", config.Settings.Enabled,
			"refresh_interval", config.Settings.RefreshInterval)
	}

	return nil
}

// LoadConfig (re)reads a single feed file and replaces the cached entry.
func (cc *ConfigCache) LoadConfig(name string) (*Config, error) {
	path := filepath.Join(cc.feedsDir, name+".yml")

	config, err := readConfig(path)
	if err != nil {
		return nil, err
	}
	config.Name = name

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.configs[name] = config

	return config, nil
}

func (cc *ConfigCache) GetConfig(name string) (*Config, error) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	config, ok := cc.configs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, name)
	}
	return config, nil
}

// Names returns all feed names in sorted order.
func (cc *ConfigCache) Names() []string {
	return cc.names(func(*Config) bool { return true })
}

// EnabledNames returns the names of enabled feeds in sorted order.
func (cc *ConfigCache) EnabledNames() []string {
	return cc.names(func(c *Config) bool { return c.Settings.Enabled })
}

func (cc *ConfigCache) Count() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.configs)
}

func (cc *ConfigCache) names(keep func(*Config) bool) []string {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	names := make([]string, 0, len(cc.configs))
	for name, config := range cc.configs {
		if keep(config) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if config.Settings.RefreshInterval == 0 {
		config.Settings.RefreshInterval = 3600
	}
	if config.Settings.Timeout == 0 {
		config.Settings.Timeout = 30
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.URL == "" {
		return fmt.Errorf("feed URL is required")
	}
	if u, err := url.Parse(c.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("feed URL must be an absolute http(s) URL: %s", c.URL)
	}

	nonNegative := map[string]int{
		"refresh interval": c.Settings.RefreshInterval,
		"max episodes":     c.Settings.MaxEpisodes,
		"timeout":          c.Settings.Timeout,
	}
	for field, value := range nonNegative {
		if value < 0 {
			return fmt.Errorf("%s must be non-negative", field)
		}
	}

	return nil
}
