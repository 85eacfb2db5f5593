package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"text/template"
)

type Template struct {
	Config TemplateCfg
	FS     fs.FS
	Base   string

	paths  []*template.Template
	bodies map[string]*template.Template
}

// FileSpec is one resolved entry of the file list.
type FileSpec struct {
	Path     string
	Template string
}

func (f FileSpec) Populated() bool {
	return f.Template != ""
}

// Data is everything a template may substitute: the request fields plus the
// logging settings of the manifest.
func (t *Template) Data(req Request) map[string]any {
	data := req.ToMap()
	data["LogDir"] = t.Config.Logging.Dir
	data["LogFile"] = t.Config.Logging.File
	data["LogFormat"] = t.Config.Logging.Format
	return data
}

// Plan resolves the file list for req, in manifest order.
func (t *Template) Plan(req Request) ([]FileSpec, error) {
	data := t.Data(req)

	specs := make([]FileSpec, 0, len(t.paths))
	for i, p := range t.paths {
		var buf bytes.Buffer
		if err := p.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("resolving path %q: %w", t.Config.Files[i].Path, err)
		}
		specs = append(specs, FileSpec{
			Path:     path.Clean(buf.String()),
			Template: t.Config.Files[i].Template,
		})
	}

	return specs, nil
}

// Render fills the named body. Every declared slot must be present in data;
// with strict set it must also be non-empty.
func (t *Template) Render(name string, data map[string]any, strict bool) ([]byte, error) {
	body, ok := t.bodies[name]
	if !ok {
		return nil, fmt.Errorf("%w: no content template %q in %s", ErrUnknownTemplate, name, t.Config.Metadata.Name)
	}

	for _, slot := range t.Config.Templates[name].Slots {
		v, ok := data[slot]
		if !ok {
			return nil, fmt.Errorf("%w: %s needs %s", ErrMissingSlot, name, slot)
		}
		if s, isString := v.(string); strict && isString && s == "" {
			return nil, fmt.Errorf("%w: %s needs a non-empty %s", ErrEmptyValue, name, slot)
		}
	}

	var buf bytes.Buffer
	if err := body.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// BodyNames lists the content templates, sorted.
func (t *Template) BodyNames() []string {
	return slices.Sorted(maps.Keys(t.bodies))
}
