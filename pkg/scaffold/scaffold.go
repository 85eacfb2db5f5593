package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/olimci/mlseed/pkg/events"
	"github.com/olimci/mlseed/pkg/utils/fileutils"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Generator materializes a template's file list under a root directory.
type Generator struct {
	template *Template
	root     string
	options  *options
}

func NewGenerator(tmpl *Template, root string, opts ...Option) *Generator {
	if root == "" {
		root = "."
	}

	return &Generator{
		template: tmpl,
		root:     root,
		options:  defaultOptions().apply(opts...),
	}
}

// Result lists what a pass did, by slash path relative to the root.
type Result struct {
	DirsCreated    []string
	FilesPopulated []string
	FilesCreated   []string
	FilesSkipped   []string
	Failed         []string
}

// Written counts files that were created or filled in.
func (r *Result) Written() int {
	return len(r.FilesPopulated) + len(r.FilesCreated)
}

// Generate walks the file list once. Missing or empty files are (re)written;
// files with content are left alone, so running it again is harmless.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if g.options.strict {
		if err := req.Validate(); err != nil {
			return nil, err
		}
	}

	plan, err := g.template.Plan(req)
	if err != nil {
		return nil, err
	}

	data := g.template.Data(req)
	result := &Result{
		DirsCreated:    make([]string, 0),
		FilesPopulated: make([]string, 0),
		FilesCreated:   make([]string, 0),
		FilesSkipped:   make([]string, 0),
		Failed:         make([]string, 0),
	}

	var errs []error
	for _, spec := range plan {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := g.generateFile(spec, data, result); err != nil {
			result.Failed = append(result.Failed, spec.Path)
			if g.options.onError == Abort {
				return result, err
			}
			g.emit(events.Error, "generating file failed", spec.Path, err)
			errs = append(errs, err)
		}
	}

	return result, errors.Join(errs...)
}

func (g *Generator) generateFile(spec FileSpec, data map[string]any, result *Result) error {
	dir, name := path.Split(spec.Path)
	dir = path.Clean(dir)

	if dir != "." && dir != "/" {
		dirPath := g.abs(dir)
		existed := fileutils.DirExists(dirPath)

		if err := os.MkdirAll(dirPath, dirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
		if !existed {
			result.DirsCreated = append(result.DirsCreated, dir)
			g.emit(events.Info, "created directory for "+name, dir, nil)
		}
	}

	target := g.abs(spec.Path)

	exists, size, err := fileutils.Size(target)
	if err != nil {
		return fmt.Errorf("checking %s: %w", spec.Path, err)
	}
	if exists && size > 0 {
		result.FilesSkipped = append(result.FilesSkipped, spec.Path)
		g.emit(events.Info, name+" already exists", spec.Path, nil)
		return nil
	}

	if !spec.Populated() {
		if err := touch(target); err != nil {
			return fmt.Errorf("creating %s: %w", spec.Path, err)
		}
		result.FilesCreated = append(result.FilesCreated, spec.Path)
		g.emit(events.Info, "created empty file", spec.Path, nil)
		return nil
	}

	g.emit(events.Debug, "rendering "+spec.Template, spec.Path, nil)
	content, err := g.template.Render(spec.Template, data, g.options.strict)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", spec.Path, err)
	}
	if err := writeText(target, string(content)); err != nil {
		return fmt.Errorf("writing %s: %w", spec.Path, err)
	}

	result.FilesPopulated = append(result.FilesPopulated, spec.Path)
	g.emit(events.Info, "populated file", spec.Path, nil)
	return nil
}

func (g *Generator) abs(rel string) string {
	return filepath.Join(g.root, filepath.FromSlash(rel))
}

func (g *Generator) emit(level events.Level, msg, p string, err error) {
	g.options.handler.Handle(events.Event{Level: level, Message: msg, Path: p, Error: err})
}

// touch creates path, or truncates it if it is already there.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}
	return f.Close()
}

func writeText(path, text string) error {
	return fileutils.AtomicWrite(path, filePerm, func(w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}

// WriteText overwrites path with text whether or not it already exists, and
// reports the outcome to h.
func WriteText(path, text string, h events.Handler) error {
	if h == nil {
		h = events.Discard
	}

	if err := writeText(path, text); err != nil {
		err = fmt.Errorf("writing %s: %w", path, err)
		h.Handle(events.Event{Level: events.Error, Message: "error writing file", Path: path, Error: err})
		return err
	}

	h.Handle(events.Event{Level: events.Info, Message: "successfully wrote file", Path: path})
	return nil
}
