package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tpnguyen/vocadrill/internal/difficulty"
	"github.com/tpnguyen/vocadrill/internal/learn"
)

func TestLoad_Defaults(t *testing.T) {
	// An explicit empty file keeps Load away from any real config on
	// the machine running the tests.
	path := filepath.Join(t.TempDir(), "vocadrill.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cfg.Policy(), learn.DefaultPolicy(); got != want {
		t.Errorf("Policy() = %+v, want %+v", got, want)
	}
	if got, want := cfg.GatePolicy(), difficulty.DefaultConfig(); got != want {
		t.Errorf("GatePolicy() = %+v, want %+v", got, want)
	}
	if cfg.Database.Path != "" {
		t.Errorf("database path = %q, want empty (resolved elsewhere)", cfg.Database.Path)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocadrill.yaml")
	src := `
database:
  path: /tmp/custom.db
learn:
  typed_recall_mastery: 2
  option_count: 6
gate:
  adjust_after: 10
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
	if cfg.Learn.TypedRecallMastery != 2 || cfg.Learn.OptionCount != 6 {
		t.Errorf("learn = %+v", cfg.Learn)
	}
	if cfg.Gate.AdjustAfter != 10 {
		t.Errorf("gate.adjust_after = %d, want 10", cfg.Gate.AdjustAfter)
	}
	// Untouched keys keep their defaults.
	if cfg.Learn.FuzzyShortLen != learn.DefaultPolicy().FuzzyShortLen {
		t.Errorf("fuzzy_short_len = %d, want default", cfg.Learn.FuzzyShortLen)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"option count too small", "learn:\n  option_count: 1\n"},
		{"mastery out of range", "learn:\n  typed_recall_mastery: 9\n"},
		{"zero adjust_after", "gate:\n  adjust_after: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "vocadrill.yaml")
			if err := os.WriteFile(path, []byte(tt.src), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%q) succeeded, want validation error", tt.name)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("an explicitly named missing config file should be an error")
	}
}
