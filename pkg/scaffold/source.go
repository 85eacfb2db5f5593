package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed templates
var builtin embed.FS

// BuiltinRoot is the directory of the built-in templates inside the binary.
const BuiltinRoot = "templates"

// DefaultTemplate is used when no template is named.
const DefaultTemplate = "mlproject"

type TemplateSource interface {
	Load(registry *TemplateRegistry) error
}

type EmbeddedSource struct {
	FS      fs.FS
	RootDir string
}

func (e *EmbeddedSource) Load(registry *TemplateRegistry) error {
	if err := registry.LoadFromFS(e.FS, e.RootDir); err != nil {
		return fmt.Errorf("loading embedded templates: %w", err)
	}
	return nil
}

// DirectorySource loads templates from disk, either a single template
// directory or a directory of them.
type DirectorySource struct {
	Path string
}

func (d *DirectorySource) Load(registry *TemplateRegistry) error {
	info, err := os.Stat(d.Path)
	if err != nil {
		return fmt.Errorf("template directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("template directory: %s is not a directory", d.Path)
	}

	if err := registry.LoadFromFS(os.DirFS(d.Path), "."); err != nil {
		return fmt.Errorf("loading templates from %s: %w", d.Path, err)
	}
	return nil
}

func LoadSources(registry *TemplateRegistry, sources ...TemplateSource) error {
	for _, source := range sources {
		if err := source.Load(registry); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry loads the built-in templates, then extraDir on top when set.
func NewRegistry(extraDir string) (*TemplateRegistry, error) {
	registry := NewTemplateRegistry()

	sources := []TemplateSource{&EmbeddedSource{FS: builtin, RootDir: BuiltinRoot}}
	if extraDir != "" {
		sources = append(sources, &DirectorySource{Path: extraDir})
	}

	if err := LoadSources(registry, sources...); err != nil {
		return nil, err
	}

	return registry, nil
}
