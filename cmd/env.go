package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/olimci/mlseed/pkg/config"
	"github.com/olimci/mlseed/pkg/venv"
)

type envSteps struct {
	skip    bool
	noShell bool
	confirm bool
}

// newEnv is swapped out in tests.
var newEnv = func(dir string) *venv.Env {
	return venv.New(dir, venv.NewExecRunner())
}

// setupEnv creates the virtual environment in dir, loosens the PowerShell
// execution policy where that applies and finally hands the terminal to a
// shell with the environment active.
func (s *session) setupEnv(ctx context.Context, dir string, steps envSteps) error {
	if steps.skip || !config.Enabled(s.cfg.Env.Create) {
		return nil
	}

	env := newEnv(dir)
	if s.cfg.Env.Name != "" {
		env.Name = s.cfg.Env.Name
	}
	env.Python = s.cfg.Env.Python

	fmt.Fprintf(s.out, "Creating virtual environment using: %s\n", strings.Join(env.CreateCommand(), " "))
	if err := env.Create(ctx); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Virtual environment '%s' created.\n\n", env.Name)

	if config.Enabled(s.cfg.Env.RelaxPolicy) && env.PolicyCommand() != nil {
		fmt.Fprintln(s.out, "Setting PowerShell execution policy...")
		if _, err := env.RelaxExecutionPolicy(ctx); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Execution policy set to 'Unrestricted'.")
		fmt.Fprintln(s.out)
	}

	if steps.noShell || !config.Enabled(s.cfg.Env.Activate) {
		fmt.Fprintf(s.out, "Activate it with: %s\n", activateHint(env))
		return nil
	}

	if steps.confirm {
		ok, err := confirm(ctx, fmt.Sprintf("Launch a shell with '%s' activated?", env.Name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(s.out, "Activate it with: %s\n", activateHint(env))
			return nil
		}
	}

	fmt.Fprintln(s.out, "Launching new shell with virtual environment activated...")
	fmt.Fprintln(s.out)
	return env.Activate(ctx)
}

func activateHint(env *venv.Env) string {
	if env.IsWindows() {
		return fmt.Sprintf(`.\%s\Scripts\Activate.ps1`, env.Name)
	}
	return fmt.Sprintf("source %s/bin/activate", env.Name)
}
