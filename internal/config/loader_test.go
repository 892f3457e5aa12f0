package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "node.yaml")

	content := []byte(`
game:
  starting_lives: 5
  beam_threshold: 800
  mode: joystick
  difficulty: extreme
storage:
  db_path: ./x.db
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Game.StartingLives != 5 {
		t.Errorf("Expected 5 starting lives, got %d", cfg.Game.StartingLives)
	}
	if cfg.Game.BeamThreshold != 800 {
		t.Errorf("Expected threshold 800, got %d", cfg.Game.BeamThreshold)
	}
	if cfg.Game.Mode != "joystick" || cfg.Game.Difficulty != "extreme" {
		t.Errorf("Expected joystick/extreme, got %s/%s", cfg.Game.Mode, cfg.Game.Difficulty)
	}
	if cfg.Storage.DBPath != "./x.db" {
		t.Errorf("Expected db path ./x.db, got %s", cfg.Storage.DBPath)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for a missing custom config path")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg NodeConfig
	if err := yaml.Unmarshal(defaultNodeYAML, &cfg); err != nil {
		t.Fatalf("Embedded default YAML does not parse: %v", err)
	}

	want := DefaultNodeConfig()
	if cfg != want {
		t.Errorf("Embedded default %+v differs from DefaultNodeConfig %+v", cfg, want)
	}
}
