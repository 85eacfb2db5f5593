package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/olimci/mlseed/pkg/config"
	"github.com/olimci/mlseed/pkg/events"
	"github.com/olimci/mlseed/pkg/scaffold"
	"github.com/urfave/cli/v3"
)

// session is the state every scaffolding command starts from: config with
// flag overrides applied, a logger and the template registry.
type session struct {
	cfg      *config.Config
	logger   *log.Logger
	registry *scaffold.TemplateRegistry

	in  io.Reader
	out io.Writer
}

func newSession(cmd *cli.Command) (*session, error) {
	cfg, err := config.Load(cmd.String("config"), cmd.IsSet("config"))
	if err != nil {
		return nil, err
	}
	applyFlags(cfg, cmd)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &session{
		cfg: cfg,
		in:  reader(cmd),
		out: writer(cmd),
	}

	s.logger = newLogger(s.out, cfg.LogLevel(), config.Enabled(cfg.Log.Timestamps))

	registry, err := scaffold.NewRegistry(cfg.Scaffold.TemplatesDir)
	if err != nil {
		return nil, err
	}
	s.registry = registry

	return s, nil
}

func applyFlags(cfg *config.Config, cmd *cli.Command) {
	override := func(dst *string, flag string) {
		if cmd.IsSet(flag) {
			*dst = strings.TrimSpace(cmd.String(flag))
		}
	}
	override(&cfg.Scaffold.Template, "template")
	override(&cfg.Scaffold.TemplatesDir, "templates-dir")
	override(&cfg.Scaffold.OnError, "on-error")
	override(&cfg.Log.Level, "log-level")
	override(&cfg.Env.Name, "env-name")
	override(&cfg.Env.Python, "python")

	if cmd.Bool("strict") {
		cfg.Scaffold.Strict = true
	}
}

func (s *session) template() (*scaffold.Template, error) {
	return s.registry.Lookup(s.cfg.Scaffold.Template)
}

// generate runs one scaffolding pass into target and prints the outcome.
func (s *session) generate(ctx context.Context, tmpl *scaffold.Template, target string, req scaffold.Request) (*scaffold.Result, error) {
	rec := &events.Recorder{}
	gen := scaffold.NewGenerator(tmpl, target,
		scaffold.WithHandler(events.Tee(logHandler{logger: s.logger}, rec)),
		scaffold.WithErrorPolicy(s.cfg.ErrorPolicy()),
		scaffold.WithStrict(s.cfg.Scaffold.Strict),
	)

	result, err := gen.Generate(ctx, req)
	for _, line := range formatSummary(result, rec.Summary()) {
		fmt.Fprintln(s.out, line)
	}

	return result, err
}

func targetDir(cmd *cli.Command) (string, error) {
	target := "."
	if cmd.NArg() > 0 {
		target = strings.TrimSpace(cmd.Args().First())
	}
	if target == "" {
		target = "."
	}
	return filepath.Abs(target)
}

func reader(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
