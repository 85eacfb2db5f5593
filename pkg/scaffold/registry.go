package scaffold

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

type TemplateRegistry struct {
	templates map[string]*Template
}

func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]*Template),
	}
}

// LoadFromFS registers the template at rootDir if it has a manifest of its
// own, otherwise every subdirectory that does. Later loads replace earlier
// templates of the same name.
func (r *TemplateRegistry) LoadFromFS(fsys fs.FS, rootDir string) error {
	if _, err := fs.Stat(fsys, path.Join(rootDir, TemplateFile)); err == nil {
		return r.load(fsys, rootDir)
	}

	entries, err := fs.ReadDir(fsys, rootDir)
	if err != nil {
		return fmt.Errorf("reading template directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := path.Join(rootDir, entry.Name())
		if _, err := fs.Stat(fsys, path.Join(dir, TemplateFile)); err != nil {
			continue
		}
		if err := r.load(fsys, dir); err != nil {
			return fmt.Errorf("loading template %q: %w", entry.Name(), err)
		}
	}

	return nil
}

func (r *TemplateRegistry) load(fsys fs.FS, dir string) error {
	tmpl, err := LoadTemplate(fsys, dir)
	if err != nil {
		return err
	}
	r.templates[tmpl.Config.Metadata.Name] = tmpl
	return nil
}

func (r *TemplateRegistry) Get(name string) (*Template, bool) {
	t, ok := r.templates[name]
	return t, ok
}

// Lookup is Get with an error naming the available templates.
func (r *TemplateRegistry) Lookup(name string) (*Template, error) {
	if t, ok := r.Get(name); ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w %q; available templates: %s", ErrUnknownTemplate, name, strings.Join(r.List(), ", "))
}

func (r *TemplateRegistry) List() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *TemplateRegistry) All() []*Template {
	templates := make([]*Template, 0, len(r.templates))
	for _, name := range r.List() {
		templates = append(templates, r.templates[name])
	}
	return templates
}
