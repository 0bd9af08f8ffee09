package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/voxelarena/skelsim/skeleton"
)

func TestDefaultSettingsMatchSkeletonDefaults(t *testing.T) {
	s := DefaultSettings()
	if s.Physics.Config() != skeleton.DefaultConfig() {
		t.Fatalf("expected default physics %+v, got %+v", skeleton.DefaultConfig(), s.Physics.Config())
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("expected default settings to be valid: %v", err)
	}
}

func TestLoadOrCreateTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skelsim.toml")

	created, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if created != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", created)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected settings file to be written: %v", err)
	}

	loaded, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate existing: %v", err)
	}
	if loaded != DefaultSettings() {
		t.Fatalf("expected round-tripped defaults, got %+v", loaded)
	}

	if err := SaveDefault(path); err == nil {
		t.Fatalf("expected SaveDefault to refuse overwriting an existing file")
	}
}

func TestLoadPartialYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skelsim.yaml")
	data := []byte("physics:\n  gravity: 30\nsimulation:\n  parallel: true\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Physics.Gravity != 30 || !s.Simulation.Parallel {
		t.Fatalf("expected overrides to apply, got %+v", s)
	}

	want := DefaultSettings()
	if s.Physics.Substeps != want.Physics.Substeps || s.Simulation.TickRate != want.Simulation.TickRate {
		t.Fatalf("expected missing values to keep their defaults, got %+v", s)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skelsim.yml")
	if err := os.WriteFile(path, []byte("physics:\n  substeps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected zero substeps to be rejected")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected a missing file to be an error")
	}
}
