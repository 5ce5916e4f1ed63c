package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Error("exists should be false for a missing file")
	}
	if cfg.Recommend.Limit != defaultRecommendLimit {
		t.Errorf("limit = %d, want default %d", cfg.Recommend.Limit, defaultRecommendLimit)
	}
	if cfg.Recommend.MinRatingFloor != defaultMinRatingFloor ||
		cfg.Recommend.MinRatingCeiling != defaultMinRatingCeiling {
		t.Errorf("rating bounds = %.1f-%.1f, want defaults", cfg.Recommend.MinRatingFloor, cfg.Recommend.MinRatingCeiling)
	}
	if !strings.HasSuffix(cfg.Dataset.Path, defaultDatasetPath) {
		t.Errorf("dataset path = %q, want suffix %q", cfg.Dataset.Path, defaultDatasetPath)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadParsesFile(t *testing.T) {
	path := writeConfig(t, `
[dataset]
path = "/data/movies.csv"

[recommend]
limit = 8

[logging]
level = "debug"
format = "json"
`)

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Errorf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Dataset.Path != "/data/movies.csv" {
		t.Errorf("dataset path = %q", cfg.Dataset.Path)
	}
	if cfg.Recommend.Limit != 8 {
		t.Errorf("limit = %d, want 8", cfg.Recommend.Limit)
	}
	// Unset keys keep defaults.
	if cfg.Recommend.SimilarLimit != defaultSimilarLimit {
		t.Errorf("similar_limit = %d, want default", cfg.Recommend.SimilarLimit)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadExpandsTildeDatasetPath(t *testing.T) {
	path := writeConfig(t, `
[dataset]
path = "~/movies/top.csv"
`)

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	want := filepath.Join(home, "movies", "top.csv")
	if cfg.Dataset.Path != want {
		t.Errorf("dataset path = %q, want %q", cfg.Dataset.Path, want)
	}
}

func TestLoadValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "[logging]\nlevel = \"verbose\"\n"},
		{"bad log format", "[logging]\nformat = \"xml\"\n"},
		{"zero limit", "[recommend]\nlimit = 0\n"},
		{"inverted rating bounds", "[recommend]\nmin_rating_floor = 9.0\nmin_rating_ceiling = 8.0\n"},
		{"empty dataset path", "[dataset]\npath = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, _, _, err := Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	cfg, _, exists, err := Load(target)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Error("sample config should exist")
	}
	defaults := Default()
	if cfg.Recommend != defaults.Recommend {
		t.Errorf("sample recommend = %+v, want defaults %+v", cfg.Recommend, defaults.Recommend)
	}
	if cfg.Logging != defaults.Logging {
		t.Errorf("sample logging = %+v, want defaults %+v", cfg.Logging, defaults.Logging)
	}
}
