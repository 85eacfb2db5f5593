package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	"github.com/olimci/mlseed/pkg/version"
)

// LoadTemplate reads and validates the template rooted at base.
func LoadTemplate(fsys fs.FS, base string) (*Template, error) {
	data, err := fs.ReadFile(fsys, path.Join(base, TemplateFile))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var config TemplateCfg
	if md, err := toml.Decode(string(data), &config); err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrInvalidManifest, err)
	} else if len(md.Undecoded()) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidManifest, md.Undecoded())
	}

	config.applyDefaults()

	if err := checkMetadata(config.Metadata); err != nil {
		return nil, err
	}

	tmpl := &Template{
		Config: config,
		FS:     fsys,
		Base:   base,
		paths:  make([]*template.Template, 0, len(config.Files)),
		bodies: make(map[string]*template.Template, len(config.Templates)),
	}

	for name, body := range config.Templates {
		parsed, err := parseBody(fsys, base, name, body)
		if err != nil {
			return nil, err
		}
		tmpl.bodies[name] = parsed
	}

	if err := tmpl.parseFiles(); err != nil {
		return nil, err
	}

	return tmpl, nil
}

func checkMetadata(meta TemplateCfgMeta) error {
	if strings.TrimSpace(meta.Name) == "" {
		return fmt.Errorf("%w: metadata.name is required", ErrInvalidManifest)
	}

	if meta.MinVersion == "" {
		return nil
	}

	min, err := version.Parse(meta.MinVersion)
	if err != nil {
		return fmt.Errorf("%w: min_version: %w", ErrInvalidManifest, err)
	}
	if version.Current().Less(min) {
		return fmt.Errorf("%w: %s needs %s, running %s", ErrUnsupportedVersion, meta.Name, min, version.String())
	}

	return nil
}

func parseBody(fsys fs.FS, base, name string, body TemplateCfgBody) (*template.Template, error) {
	if body.Source == "" {
		return nil, fmt.Errorf("%w: template %q has no source", ErrInvalidManifest, name)
	}
	if err := checkRelative(body.Source); err != nil {
		return nil, fmt.Errorf("%w: template %q: %w", ErrInvalidManifest, name, err)
	}

	content, err := fs.ReadFile(fsys, path.Join(base, body.Source))
	if err != nil {
		return nil, fmt.Errorf("%w: template %q: %w", ErrInvalidManifest, name, err)
	}

	parsed, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing template %q: %w", ErrInvalidManifest, name, err)
	}

	return parsed, nil
}

func (t *Template) parseFiles() error {
	seen := make(map[string]bool, len(t.Config.Files))

	for i, file := range t.Config.Files {
		if strings.TrimSpace(file.Path) == "" {
			return fmt.Errorf("%w: files[%d] has no path", ErrInvalidManifest, i)
		}
		if seen[file.Path] {
			return fmt.Errorf("%w: duplicate file %q", ErrInvalidManifest, file.Path)
		}
		seen[file.Path] = true

		if err := checkRelative(file.Path); err != nil {
			return fmt.Errorf("%w: files[%d]: %w", ErrInvalidManifest, i, err)
		}
		if file.Template != "" {
			if _, ok := t.bodies[file.Template]; !ok {
				return fmt.Errorf("%w: file %q uses undefined template %q", ErrInvalidManifest, file.Path, file.Template)
			}
		}

		parsed, err := template.New(file.Path).Option("missingkey=error").Parse(file.Path)
		if err != nil {
			return fmt.Errorf("%w: parsing path %q: %w", ErrInvalidManifest, file.Path, err)
		}
		t.paths = append(t.paths, parsed)
	}

	return nil
}

// checkRelative rejects absolute paths and parent references in the literal
// manifest text. Substituted values are not checked.
func checkRelative(p string) error {
	if strings.HasPrefix(p, "/") || strings.HasPrefix(p, `\`) || (len(p) > 1 && p[1] == ':') {
		return errors.New("path " + p + " must be relative")
	}
	for _, seg := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return errors.New("path " + p + " must not contain ..")
		}
	}
	return nil
}
