package feed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name+".yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigCacheLoadValidConfig(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "metaebene", `
url: "https://example.com/podcast.xml"

settings:
  enabled: true
  refresh_interval: 1800
  max_episodes: 25
  timeout: 15
`)

	configCache := NewConfigCache(tempDir)
	if err := configCache.Run(); err != nil {
		t.Fatal(err)
	}

	if configCache.Count() != 1 {
		t.Errorf("Expected 1 config, got %d", configCache.Count())
	}

	config, err := configCache.GetConfig("metaebene")
	if err != nil {
		t.Fatal(err)
	}

	if config.Name != "metaebene" {
		t.Errorf("Expected name 'metaebene', got '%s'", config.Name)
	}
	if config.URL != "https://example.com/podcast.xml" {
		t.Errorf("Expected URL 'https://example.com/podcast.xml', got '%s'", config.URL)
	}
	if config.Settings.RefreshInterval != 1800 {
		t.Errorf("Expected refresh interval 1800, got %d", config.Settings.RefreshInterval)
	}
	if config.Settings.MaxEpisodes != 25 {
		t.Errorf("Expected max episodes 25, got %d", config.Settings.MaxEpisodes)
	}
	if config.Settings.Timeout != 15 {
		t.Errorf("Expected timeout 15, got %d", config.Settings.Timeout)
	}
}

func TestConfigCacheDefaults(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "minimal", `
url: "https://example.com/podcast.xml"
settings:
  enabled: true
`)

	configCache := NewConfigCache(tempDir)
	if err := configCache.Run(); err != nil {
		t.Fatal(err)
	}

	config, err := configCache.GetConfig("minimal")
	if err != nil {
		t.Fatal(err)
	}
	if config.Settings.RefreshInterval != 3600 {
		t.Errorf("Expected default refresh interval 3600, got %d", config.Settings.RefreshInterval)
	}
	if config.Settings.Timeout != 30 {
		t.Errorf("Expected default timeout 30, got %d", config.Settings.Timeout)
	}
	if config.Settings.MaxEpisodes != 0 {
		t.Errorf("Expected max episodes to stay 0, got %d", config.Settings.MaxEpisodes)
	}
}

func TestConfigCacheInvalidConfigs(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing url", "settings:\n  enabled: true\n"},
		{"relative url", "url: \"/podcast.xml\"\n"},
		{"ftp url", "url: \"ftp://example.com/podcast.xml\"\n"},
		{"negative timeout", "url: \"https://example.com/podcast.xml\"\nsettings:\n  timeout: -5\n"},
		{"broken yaml", "url: [unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			writeConfig(t, tempDir, "invalid", tt.content)

			if err := NewConfigCache(tempDir).Run(); err == nil {
				t.Error("Expected error for invalid config")
			}
		})
	}
}

func TestConfigCacheMissingDirectory(t *testing.T) {
	configCache := NewConfigCache(filepath.Join(t.TempDir(), "does-not-exist"))
	if err := configCache.Run(); err != nil {
		t.Fatal(err)
	}
	if configCache.Count() != 0 {
		t.Errorf("Expected 0 configs, got %d", configCache.Count())
	}
}

func TestConfigCacheNotFound(t *testing.T) {
	_, err := NewConfigCache(t.TempDir()).GetConfig("nope")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
}

func TestConfigCacheNames(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "b-show", "url: \"https://example.com/b.xml\"\nsettings:\n  enabled: true\n")
	writeConfig(t, tempDir, "a-show", "url: \"https://example.com/a.xml\"\nsettings:\n  enabled: true\n")
	writeConfig(t, tempDir, "c-show", "url: \"https://example.com/c.xml\"\nsettings:\n  enabled: false\n")

	configCache := NewConfigCache(tempDir)
	if err := configCache.Run(); err != nil {
		t.Fatal(err)
	}

	names := configCache.Names()
	if len(names) != 3 || names[0] != "a-show" || names[2] != "c-show" {
		t.Errorf("Unexpected names: %v", names)
	}

	enabled := configCache.EnabledNames()
	if len(enabled) != 2 || enabled[0] != "a-show" || enabled[1] != "b-show" {
		t.Errorf("Unexpected enabled names: %v", enabled)
	}
}

func TestConfigCacheReloadConfig(t *testing.T) {
	tempDir := t.TempDir()
	path := writeConfig(t, tempDir, "show", "url: \"https://example.com/podcast.xml\"\nsettings:\n  enabled: true\n")

	configCache := NewConfigCache(tempDir)
	if err := configCache.Run(); err != nil {
		t.Fatal(err)
	}

	updated := "url: \"https://example.com/new-podcast.xml\"\nsettings:\n  enabled: false\n  max_episodes: 50\n"
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatal(err)
	}

	reloaded, err := configCache.LoadConfig("show")
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.URL != "https://example.com/new-podcast.xml" {
		t.Errorf("Expected updated URL, got '%s'", reloaded.URL)
	}

	cached, err := configCache.GetConfig("show")
	if err != nil {
		t.Fatal(err)
	}
	if cached.Settings.Enabled || cached.Settings.MaxEpisodes != 50 {
		t.Errorf("Expected cached config to be replaced, got %+v", cached.Settings)
	}
}
