package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/SquarePack/internal/model"
)

func testProfiles() []Profile {
	fast := model.DefaultSettings()
	fast.Trials = 20
	wide := model.DefaultSettings()
	wide.SpaceSize = 200
	wide.Policy = model.PolicyArea
	wide.Algorithm = model.AlgorithmGenetic
	return []Profile{
		{Name: "fast", Description: "Quick look", Settings: fast},
		{Name: "wide", Settings: wide},
	}
}

func TestSaveAndLoadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")

	if err := SaveProfiles(path, testProfiles()); err != nil {
		t.Fatalf("SaveProfiles failed: %v", err)
	}

	loaded, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("LoadProfiles failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(loaded))
	}
	if loaded[0].Settings.Trials != 20 {
		t.Errorf("expected 20 trials, got %d", loaded[0].Settings.Trials)
	}
	if loaded[1].Settings.Policy != model.PolicyArea || loaded[1].Settings.Algorithm != model.AlgorithmGenetic {
		t.Errorf("unexpected settings %+v", loaded[1].Settings)
	}
}

func TestLoadProfilesMissingFile(t *testing.T) {
	profiles, err := LoadProfiles(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profiles == nil || len(profiles) != 0 {
		t.Errorf("expected empty slice, got %v", profiles)
	}
}

func TestLoadProfilesRejectsUnnamed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, []byte("- settings:\n    trials: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfiles(path); err == nil {
		t.Fatal("expected error for unnamed profile")
	}
}

func TestFindProfile(t *testing.T) {
	p, err := FindProfile(testProfiles(), "wide")
	if err != nil {
		t.Fatalf("FindProfile failed: %v", err)
	}
	if p.Settings.SpaceSize != 200 {
		t.Errorf("expected space 200, got %d", p.Settings.SpaceSize)
	}

	_, err = FindProfile(testProfiles(), "missing")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestUpsertProfile(t *testing.T) {
	profiles := testProfiles()

	replaced := UpsertProfile(profiles, Profile{Name: "fast", Settings: model.DefaultSettings()})
	if len(replaced) != 2 || replaced[0].Settings.Trials != 100 {
		t.Errorf("expected fast to be replaced, got %+v", replaced)
	}

	added := UpsertProfile(replaced, Profile{Name: "new"})
	if len(added) != 3 {
		t.Errorf("expected 3 profiles, got %d", len(added))
	}
}
