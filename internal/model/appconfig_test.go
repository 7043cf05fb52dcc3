package model

import "testing"

func TestDefaultAppConfigMatchesDefaultSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	defaults := DefaultSettings()

	if cfg.DefaultSpaceSize != defaults.SpaceSize {
		t.Errorf("SpaceSize mismatch: config=%d settings=%d", cfg.DefaultSpaceSize, defaults.SpaceSize)
	}
	if cfg.DefaultTrials != defaults.Trials {
		t.Errorf("Trials mismatch: config=%d settings=%d", cfg.DefaultTrials, defaults.Trials)
	}
	if cfg.DefaultPolicy != defaults.Policy {
		t.Errorf("Policy mismatch: config=%s settings=%s", cfg.DefaultPolicy, defaults.Policy)
	}
	if cfg.MinSide != 1 || cfg.MaxSide != 20 {
		t.Errorf("expected generator range [1, 20], got [%d, %d]", cfg.MinSide, cfg.MaxSide)
	}
	if cfg.RecentRuns == nil {
		t.Error("RecentRuns should not be nil")
	}
}

func TestApplyToSettings(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultSpaceSize = 60
	cfg.DefaultTrials = 250
	cfg.DefaultPolicy = PolicyArea

	s := DefaultSettings()
	cfg.ApplyToSettings(&s)

	if s.SpaceSize != 60 {
		t.Errorf("expected SpaceSize=60, got %d", s.SpaceSize)
	}
	if s.Trials != 250 {
		t.Errorf("expected Trials=250, got %d", s.Trials)
	}
	if s.Policy != PolicyArea {
		t.Errorf("expected Policy=area, got %s", s.Policy)
	}
}

func TestAddRecentRun(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentRun("a.json", 2)
	cfg.AddRecentRun("b.json", 2)
	cfg.AddRecentRun("a.json", 2)
	cfg.AddRecentRun("c.json", 2)

	if len(cfg.RecentRuns) != 2 {
		t.Fatalf("expected 2 recent runs, got %d", len(cfg.RecentRuns))
	}
	if cfg.RecentRuns[0] != "c.json" || cfg.RecentRuns[1] != "a.json" {
		t.Errorf("unexpected order: %v", cfg.RecentRuns)
	}
}
