package scaffold

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

const tinyManifest = `
[metadata]
name = "tiny"
description = "two files"

[templates.readme]
source = "readme.tmpl"
slots = ["RepoName", "Username"]

[[files]]
path = "{{.Package}}/README.md"
template = "readme"

[[files]]
path = "empty.txt"
`

func tinyFS(manifest string) fstest.MapFS {
	return fstest.MapFS{
		"tiny/template.toml": {Data: []byte(manifest)},
		"tiny/readme.tmpl":   {Data: []byte("# {{.RepoName}} by {{.Username}}\n")},
	}
}

func TestLoadTemplate(t *testing.T) {
	tmpl, err := LoadTemplate(tinyFS(tinyManifest), "tiny")
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}

	if tmpl.Config.Logging.Dir != "logs" || tmpl.Config.Logging.File != "running_logs.log" {
		t.Errorf("logging defaults not applied: %+v", tmpl.Config.Logging)
	}

	plan, err := tmpl.Plan(NewRequest("Repo", "me", "pkg", "e"))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	want := []FileSpec{
		{Path: "pkg/README.md", Template: "readme"},
		{Path: "empty.txt"},
	}
	if len(plan) != len(want) {
		t.Fatalf("plan = %+v, want %+v", plan, want)
	}
	for i := range want {
		if plan[i] != want[i] {
			t.Errorf("plan[%d] = %+v, want %+v", i, plan[i], want[i])
		}
	}

	out, err := tmpl.Render("readme", tmpl.Data(NewRequest("Repo", "me", "pkg", "e")), false)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(out) != "# Repo by me\n" {
		t.Errorf("Render = %q", out)
	}
}

func TestLoadTemplateRejectsBadManifests(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantErr  error
		contains string
	}{
		{
			name:     "unknown key",
			manifest: tinyManifest + "\nbogus = 1\n",
			wantErr:  ErrInvalidManifest,
			contains: "unknown keys",
		},
		{
			name:     "missing name",
			manifest: strings.Replace(tinyManifest, `name = "tiny"`, `name = ""`, 1),
			wantErr:  ErrInvalidManifest,
			contains: "metadata.name",
		},
		{
			name:     "undefined template",
			manifest: strings.Replace(tinyManifest, `template = "readme"`, `template = "nope"`, 1),
			wantErr:  ErrInvalidManifest,
			contains: "undefined template",
		},
		{
			name:     "absolute path",
			manifest: strings.Replace(tinyManifest, `path = "empty.txt"`, `path = "/etc/passwd"`, 1),
			wantErr:  ErrInvalidManifest,
			contains: "relative",
		},
		{
			name:     "parent reference",
			manifest: strings.Replace(tinyManifest, `path = "empty.txt"`, `path = "../escape.txt"`, 1),
			wantErr:  ErrInvalidManifest,
			contains: "..",
		},
		{
			name:     "duplicate path",
			manifest: strings.Replace(tinyManifest, `path = "empty.txt"`, `path = "{{.Package}}/README.md"`, 1),
			wantErr:  ErrInvalidManifest,
			contains: "duplicate",
		},
		{
			name:     "bad path template",
			manifest: strings.Replace(tinyManifest, `path = "empty.txt"`, `path = "{{.Package"`, 1),
			wantErr:  ErrInvalidManifest,
			contains: "parsing path",
		},
		{
			name:     "newer tool required",
			manifest: strings.Replace(tinyManifest, `description = "two files"`, `min_version = "99.0.0"`, 1),
			wantErr:  ErrUnsupportedVersion,
			contains: "99.0.0",
		},
		{
			name:     "garbage min version",
			manifest: strings.Replace(tinyManifest, `description = "two files"`, `min_version = "latest"`, 1),
			wantErr:  ErrInvalidManifest,
			contains: "min_version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTemplate(tinyFS(tt.manifest), "tiny")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not mention %q", err, tt.contains)
			}
		})
	}
}

func TestLoadTemplateMissingSource(t *testing.T) {
	fsys := tinyFS(tinyManifest)
	delete(fsys, "tiny/readme.tmpl")

	_, err := LoadTemplate(fsys, "tiny")
	if !errors.Is(err, ErrInvalidManifest) {
		t.Fatalf("error = %v, want ErrInvalidManifest", err)
	}
}

func TestRenderChecksSlots(t *testing.T) {
	tmpl, err := LoadTemplate(tinyFS(tinyManifest), "tiny")
	if err != nil {
		t.Fatal(err)
	}

	_, err = tmpl.Render("readme", map[string]any{"RepoName": "r"}, false)
	if !errors.Is(err, ErrMissingSlot) {
		t.Errorf("missing slot error = %v, want ErrMissingSlot", err)
	}

	_, err = tmpl.Render("readme", map[string]any{"RepoName": "r", "Username": ""}, true)
	if !errors.Is(err, ErrEmptyValue) {
		t.Errorf("strict empty error = %v, want ErrEmptyValue", err)
	}

	out, err := tmpl.Render("readme", map[string]any{"RepoName": "r", "Username": ""}, false)
	if err != nil || string(out) != "# r by \n" {
		t.Errorf("permissive render = %q, %v", out, err)
	}

	if _, err := tmpl.Render("nope", nil, false); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("unknown body error = %v, want ErrUnknownTemplate", err)
	}
}

func TestRegistry(t *testing.T) {
	registry, err := NewRegistry("")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if got := registry.List(); len(got) != 1 || got[0] != DefaultTemplate {
		t.Errorf("List() = %v, want [%s]", got, DefaultTemplate)
	}

	tmpl, ok := registry.Get(DefaultTemplate)
	if !ok {
		t.Fatal("built-in template missing")
	}
	if n := len(tmpl.Config.Files); n != 20 {
		t.Errorf("built-in template has %d files, want 20", n)
	}
	if got := strings.Join(tmpl.BodyNames(), ","); got != "common,descriptor,package_init" {
		t.Errorf("BodyNames() = %s", got)
	}

	if _, err := registry.Lookup("missing"); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("Lookup(missing) error = %v", err)
	} else if !strings.Contains(err.Error(), DefaultTemplate) {
		t.Errorf("Lookup error %q should list available templates", err)
	}

	if err := registry.LoadFromFS(tinyFS(tinyManifest), "."); err != nil {
		t.Fatalf("LoadFromFS: %v", err)
	}
	if got := registry.List(); len(got) != 2 || got[0] != DefaultTemplate || got[1] != "tiny" {
		t.Errorf("List() after load = %v", got)
	}
}

func TestBuiltinPlan(t *testing.T) {
	plan, err := builtinTemplate(t).Plan(NewRequest("R", "U", "pkg", "E"))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	withPkg := 0
	populated := map[string]string{}
	for _, spec := range plan {
		if strings.HasPrefix(spec.Path, "src/pkg/") {
			withPkg++
		}
		if spec.Populated() {
			populated[spec.Path] = spec.Template
		}
	}

	if withPkg != 10 {
		t.Errorf("%d paths under src/pkg, want 10", withPkg)
	}
	want := map[string]string{
		"setup.py":                "descriptor",
		"src/pkg/__init__.py":     "package_init",
		"src/pkg/utils/common.py": "common",
	}
	for p, name := range want {
		if populated[p] != name {
			t.Errorf("%s uses template %q, want %q", p, populated[p], name)
		}
	}
	if plan[0].Path != "src/pkg/__init__.py" || plan[len(plan)-1].Path != "templates/index.html" {
		t.Errorf("plan order changed: first %s, last %s", plan[0].Path, plan[len(plan)-1].Path)
	}
}
