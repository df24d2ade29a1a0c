package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("Load = %+v, want defaults %+v", cfg, Defaults())
	}
	if cfg.Mode != "both" || !cfg.SaveRuns {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "db_path: "+filepath.Join(dir, "runs.db")+"\nmode: CUBE\nsave_runs: false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, "runs.db") {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Mode != "cube" || cfg.SaveRuns {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.TraceDir != Defaults().TraceDir {
		t.Errorf("TraceDir = %q, want default", cfg.TraceDir)
	}
}

func TestLoadExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	cfg, err := Load(writeConfig(t, "trace_dir: ~/walks\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TraceDir != filepath.Join(home, "walks") {
		t.Errorf("TraceDir = %q", cfg.TraceDir)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := map[string]string{
		"mode":   "mode: sphere\n",
		"db":     "db_path: \"\"\nsave_runs: true\n",
		"syntax": "mode: [flat\n",
	}
	for name, body := range tests {
		_, err := Load(writeConfig(t, body))
		if err == nil {
			t.Errorf("%s: Load accepted %q", name, body)
			continue
		}
		if !strings.Contains(err.Error(), "config.yaml") {
			t.Errorf("%s: error %q lacks file context", name, err)
		}
	}
}
