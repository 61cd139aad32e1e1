package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.URL != defaultURL || cfg.Org != defaultOrg || cfg.Stream != defaultStream {
		t.Fatalf("defaults not applied: %#v", cfg)
	}
	if cfg.PollInterval != defaultPollInterval || cfg.PageSize != defaultPageSize || cfg.PruneHorizon != defaultPruneHorizon {
		t.Fatalf("default tuning not applied: %#v", cfg)
	}
}

func TestLoad_ParsesAllFields(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
url = "https://logs.example.com"
org = "prod"
token = "s3cret"
stream = "app_logs"
poll_interval = "5s"
page_size = 500
prune_horizon = "3m"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.URL != "https://logs.example.com" || cfg.Org != "prod" || cfg.Token != "s3cret" || cfg.Stream != "app_logs" {
		t.Fatalf("connection fields = %#v", cfg)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("poll interval = %v, want 5s", cfg.PollInterval)
	}
	if cfg.PageSize != 500 {
		t.Fatalf("page size = %d, want 500", cfg.PageSize)
	}
	if cfg.PruneHorizon != 3*time.Minute {
		t.Fatalf("prune horizon = %v, want 3m", cfg.PruneHorizon)
	}
}

func TestLoad_EmptyFieldsKeepDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
url = "  "
stream = ""
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.URL != defaultURL || cfg.Stream != defaultStream {
		t.Fatalf("blank fields should keep defaults: %#v", cfg)
	}
}

func TestLoad_RejectsBadDurations(t *testing.T) {
	t.Parallel()

	for _, contents := range []string{
		"poll_interval = \"soon\"\n",
		"poll_interval = \"-2s\"\n",
		"prune_horizon = \"0s\"\n",
	} {
		path := writeConfig(t, contents)
		if _, err := Load(path); err == nil {
			t.Fatalf("Load accepted bad duration config %q", contents)
		}
	}
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "url = not quoted\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("Load accepted malformed TOML")
	}
}
