package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/olimci/mlseed/pkg/scaffold"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "mlseed.toml")

	cfg, err := Load(missing, false)
	if err != nil {
		t.Fatalf("Load(optional): %v", err)
	}
	if cfg.Env.Name != "myenv" || cfg.Scaffold.Template != scaffold.DefaultTemplate {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if !Enabled(cfg.Env.Create) || !Enabled(cfg.Env.Activate) || !Enabled(cfg.Log.Timestamps) {
		t.Error("defaults should enable env creation, activation and timestamps")
	}

	if _, err := Load(missing, true); err == nil {
		t.Error("Load(required) on a missing file should fail")
	}
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "mlseed.toml",
			content: `
[scaffold]
on_error = "continue"
strict = true

[env]
name = "venv"
python = "python3.12"
activate = false

[log]
level = "debug"
`,
		},
		{
			name: "yaml",
			file: "mlseed.yaml",
			content: `
scaffold:
  on_error: continue
  strict: true
env:
  name: venv
  python: python3.12
  activate: false
log:
  level: debug
`,
		},
		{
			name:    "json",
			file:    "mlseed.json",
			content: `{"scaffold": {"on_error": "continue", "strict": true}, "env": {"name": "venv", "python": "python3.12", "activate": false}, "log": {"level": "debug"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeTemp(t, tt.file, tt.content), true)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			if cfg.ErrorPolicy() != scaffold.Continue || !cfg.Scaffold.Strict {
				t.Errorf("scaffold section = %+v", cfg.Scaffold)
			}
			if cfg.Env.Name != "venv" || cfg.Env.Python != "python3.12" {
				t.Errorf("env section = %+v", cfg.Env)
			}
			if Enabled(cfg.Env.Activate) || !Enabled(cfg.Env.Create) {
				t.Errorf("activate should be off and create left on")
			}
			if cfg.LogLevel() != log.DebugLevel {
				t.Errorf("LogLevel() = %v, want debug", cfg.LogLevel())
			}
			if cfg.Scaffold.Template != scaffold.DefaultTemplate {
				t.Errorf("unset template should keep default, got %q", cfg.Scaffold.Template)
			}
		})
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		contains string
	}{
		{name: "unknown toml key", file: "c.toml", content: "[scaffold]\nbogus = 1\n", contains: "unknown keys"},
		{name: "unknown yaml key", file: "c.yaml", content: "scaffold:\n  bogus: 1\n", contains: "bogus"},
		{name: "bad policy", file: "c.toml", content: "[scaffold]\non_error = \"retry\"\n", contains: "on_error"},
		{name: "bad level", file: "c.toml", content: "[log]\nlevel = \"loud\"\n", contains: "log.level"},
		{name: "env name with slash", file: "c.toml", content: "[env]\nname = \"a/b\"\n", contains: "env.name"},
		{name: "unsupported extension", file: "c.ini", content: "x=1", contains: "unsupported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTemp(t, tt.file, tt.content), true)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not mention %q", err, tt.contains)
			}
		})
	}
}

func TestDecodeValues(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{file: "v.toml", content: "RepoName = \"Demo\"\nUsername = \"alice\"\n"},
		{file: "v.yaml", content: "variables:\n  RepoName: Demo\n  Username: alice\n"},
		{file: "v.json", content: `{"RepoName": "Demo", "Username": "alice"}`},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			values, err := DecodeValues(writeTemp(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("DecodeValues: %v", err)
			}
			if values["RepoName"] != "Demo" || values["Username"] != "alice" {
				t.Errorf("values = %v", values)
			}
		})
	}

	if _, err := DecodeValues(writeTemp(t, "v.txt", "x")); err == nil {
		t.Error("unsupported extension should fail")
	}
}
