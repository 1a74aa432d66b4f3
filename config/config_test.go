package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/tailored-agentic-units/reqstate/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.Observer != "slog" {
		t.Errorf("Observer = %q, want %q", cfg.Observer, "slog")
	}
	if cfg.Persister != "memory" {
		t.Errorf("Persister = %q, want %q", cfg.Persister, "memory")
	}
	if len(cfg.Types) != 0 {
		t.Errorf("Types = %v, want empty", cfg.Types)
	}
}

func TestConfig_Merge(t *testing.T) {
	tests := []struct {
		name   string
		source config.Config
		want   config.Config
	}{
		{
			name:   "empty source keeps defaults",
			source: config.Config{},
			want:   config.DefaultConfig(),
		},
		{
			name:   "overrides set fields",
			source: config.Config{Types: []string{"A"}, Observer: "noop", SnapshotDir: "/tmp/x"},
			want:   config.Config{Types: []string{"A"}, Observer: "noop", Persister: "memory", SnapshotDir: "/tmp/x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Merge(&tt.source)

			if !slices.Equal(cfg.Types, tt.want.Types) {
				t.Errorf("Types = %v, want %v", cfg.Types, tt.want.Types)
			}
			if cfg.Observer != tt.want.Observer {
				t.Errorf("Observer = %q, want %q", cfg.Observer, tt.want.Observer)
			}
			if cfg.Persister != tt.want.Persister {
				t.Errorf("Persister = %q, want %q", cfg.Persister, tt.want.Persister)
			}
			if cfg.SnapshotDir != tt.want.SnapshotDir {
				t.Errorf("SnapshotDir = %q, want %q", cfg.SnapshotDir, tt.want.SnapshotDir)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "json",
			file:    "config.json",
			content: `{"types":["FETCH_USER","SAVE_USER"],"observer":"noop","persister":"yaml","snapshot_dir":"snaps"}`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `types:
  - FETCH_USER
  - SAVE_USER
observer: noop
persister: yaml
snapshot_dir: snaps
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := config.LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}

			if !slices.Equal(cfg.Types, []string{"FETCH_USER", "SAVE_USER"}) {
				t.Errorf("Types = %v", cfg.Types)
			}
			if cfg.Observer != "noop" {
				t.Errorf("Observer = %q, want noop", cfg.Observer)
			}
			if cfg.Persister != "yaml" {
				t.Errorf("Persister = %q, want yaml", cfg.Persister)
			}
			if cfg.SnapshotDir != "snaps" {
				t.Errorf("SnapshotDir = %q, want snaps", cfg.SnapshotDir)
			}
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := config.LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"types":`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.LoadConfig(bad); err == nil {
		t.Error("expected error for malformed file")
	}

	notList := filepath.Join(dir, "string.json")
	if err := os.WriteFile(notList, []byte(`{"types":"FETCH_USER"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.LoadConfig(notList); err == nil {
		t.Error("expected error when types is not a list")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"types":["A"],"observer":"noop"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("REQSTATE_TYPES", "B,C")
	t.Setenv("REQSTATE_OBSERVER", "slog")

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !slices.Equal(cfg.Types, []string{"B", "C"}) {
		t.Errorf("Types = %v, want [B C]", cfg.Types)
	}
	if cfg.Observer != "slog" {
		t.Errorf("Observer = %q, want slog", cfg.Observer)
	}
	if cfg.Persister != "memory" {
		t.Errorf("Persister = %q, want memory", cfg.Persister)
	}
}
