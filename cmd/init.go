package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/olimci/mlseed/cmd/ui/init_ui"
	"github.com/olimci/mlseed/pkg/scaffold"
	"github.com/urfave/cli/v3"
)

const banner = `
--- Project Setup ---
We'll collect a few details to auto-generate your setup.py file.
These values are used for linking your project to GitHub, setting up logging, and preparing a virtual environment.

`

// Init asks for the project details, scaffolds the project and then sets up
// its virtual environment.
func Init(ctx context.Context, cmd *cli.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	target, err := targetDir(cmd)
	if err != nil {
		return fmt.Errorf("resolving target directory: %w", err)
	}

	fmt.Fprint(s.out, banner)

	tmpl, req, err := s.collect(ctx, cmd)
	if errors.Is(err, errCancelled) {
		fmt.Fprintln(s.out, "Cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := s.generate(ctx, tmpl, target, req); err != nil {
		return err
	}
	fmt.Fprintln(s.out)

	return s.setupEnv(ctx, target, envSteps{
		skip:    cmd.Bool("no-env"),
		noShell: cmd.Bool("no-shell"),
		confirm: s.interactive() && !cmd.Bool("yes"),
	})
}

var errCancelled = errors.New("cancelled")

// collect gathers the project details, with the terminal form when both ends
// are a terminal and line prompts otherwise.
func (s *session) collect(ctx context.Context, cmd *cli.Command) (*scaffold.Template, scaffold.Request, error) {
	if !s.interactive() {
		tmpl, err := s.template()
		if err != nil {
			return nil, scaffold.Request{}, err
		}
		req, err := promptLines(ctx, s.in, s.out, tmpl)
		return tmpl, req, err
	}

	params := init_ui.Params{Templates: s.registry.All()}
	if cmd.IsSet("template") || len(params.Templates) == 1 {
		params.Selected = s.cfg.Scaffold.Template
	}

	result, err := init_ui.Run(ctx, params)
	if err != nil {
		return nil, scaffold.Request{}, err
	}
	if result.Cancelled {
		return nil, scaffold.Request{}, errCancelled
	}

	return result.Template, result.Request, nil
}

func (s *session) interactive() bool {
	return isTerminal(s.in) && isTerminal(s.out)
}
