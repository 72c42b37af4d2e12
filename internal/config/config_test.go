package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingOptionalUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"), true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Price.DefaultPercent != 5 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadMissingRequiredFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml"), false); err == nil {
		t.Fatalf("expected error for missing required config")
	}
}

func TestLoadResolvesRelativeCatalogPaths(t *testing.T) {
	path := writeConfig(t, `
[catalog]
crops = "data/plants.json"
mutations = "/abs/mutations.json"

[log]
level = "debug"

[price]
default_percent = 10
`)
	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	wantCrops := filepath.Join(filepath.Dir(path), "data", "plants.json")
	if cfg.Catalog.Crops != wantCrops {
		t.Fatalf("crops path=%q want=%q", cfg.Catalog.Crops, wantCrops)
	}
	if cfg.Catalog.Mutations != "/abs/mutations.json" {
		t.Fatalf("mutations path=%q", cfg.Catalog.Mutations)
	}
	if cfg.Log.Level != "debug" || cfg.Price.DefaultPercent != 10 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "half catalog", body: "[catalog]\ncrops = \"c.toml\"\n", want: "set together"},
		{name: "bad level", body: "[log]\nlevel = \"loud\"\n", want: "log level"},
		{name: "percent too small", body: "[price]\ndefault_percent = 1\n", want: "default_percent"},
		{name: "bad toml", body: "[price\n", want: "parse failed"},
	}
	for _, tc := range cases {
		_, err := Load(writeConfig(t, tc.body), false)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.want, err)
		}
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, `
[price]
default_percnt = 10
`)
	_, err := Load(path, false)
	if err == nil {
		t.Fatalf("expected error for misspelled key")
	}
	if !strings.Contains(err.Error(), "price.default_percnt") {
		t.Fatalf("error should name the key: %v", err)
	}
}
