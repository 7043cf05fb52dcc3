package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/SquarePack/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := model.DefaultAppConfig()
	cfg.DefaultSpaceSize = 60
	cfg.DefaultPolicy = model.PolicyArea
	cfg.LogLevel = "debug"
	cfg.RecentRuns = []string{"/tmp/a.json", "/tmp/b.json"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultSpaceSize != 60 {
		t.Errorf("expected DefaultSpaceSize=60, got %d", loaded.DefaultSpaceSize)
	}
	if loaded.DefaultPolicy != model.PolicyArea {
		t.Errorf("expected area policy, got %s", loaded.DefaultPolicy)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("expected LogLevel=debug, got %s", loaded.LogLevel)
	}
	if len(loaded.RecentRuns) != 2 {
		t.Errorf("expected 2 recent runs, got %d", len(loaded.RecentRuns))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.yaml")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.DefaultTrials != model.DefaultAppConfig().DefaultTrials {
		t.Errorf("expected default trials, got %d", cfg.DefaultTrials)
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_space_size: 40\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultSpaceSize != 40 {
		t.Errorf("expected space size 40, got %d", cfg.DefaultSpaceSize)
	}
	if cfg.DefaultMargin != defaults.DefaultMargin {
		t.Errorf("expected default margin %d, got %d", defaults.DefaultMargin, cfg.DefaultMargin)
	}
	if cfg.MaxSide != defaults.MaxSide {
		t.Errorf("expected default max side %d, got %d", defaults.MaxSide, cfg.MaxSide)
	}
	if cfg.RecentRuns == nil {
		t.Error("RecentRuns should not be nil after loading")
	}
}

func TestLoadAppConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_trials: [not, a, number"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "config.yaml")

	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}
