package cmd

import (
	"context"
	"fmt"

	"github.com/olimci/mlseed/pkg/config"
	"github.com/olimci/mlseed/pkg/scaffold"
	"github.com/olimci/mlseed/pkg/version"
	"github.com/urfave/cli/v3"
)

var Version = version.String()

func Execute(ctx context.Context, args []string) error {
	return newApp().Run(ctx, args)
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "mlseed",
		Usage: "Scaffold a machine-learning Python project",
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runVersion(ctx, cmd)
				},
			},
			{
				Name:      "init",
				Usage:     "Prompt for project details, scaffold the project and set up its environment",
				ArgsUsage: "[directory]",
				Flags: append(append(scaffoldFlags(), envFlags()...),
					&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "launch the shell without asking"},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return Init(ctx, cmd)
				},
			},
			{
				Name:  "templates",
				Usage: "List available project templates",
				Flags: []cli.Flag{configFlag(), templatesDirFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runTemplates(ctx, cmd)
				},
			},
			xCmd(),
		},
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   config.DefaultPath,
		Usage:   "config file path (.toml, .yaml, .yml, .json)",
		Sources: cli.EnvVars("MLSEED_CONFIG"),
	}
}

func templatesDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "templates-dir",
		Usage: "extra directory of project templates (overrides config)",
	}
}

func scaffoldFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		templatesDirFlag(),
		&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Usage: fmt.Sprintf("project template (default %q)", scaffold.DefaultTemplate)},
		&cli.StringFlag{Name: "on-error", Usage: "what to do when a file fails: abort or continue (overrides config)"},
		&cli.BoolFlag{Name: "strict", Aliases: []string{"s"}, Usage: "reject empty project details"},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error (overrides config)"},
	}
}

func envFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "no-env", Usage: "skip creating the virtual environment"},
		&cli.BoolFlag{Name: "no-shell", Usage: "create the virtual environment but do not launch a shell"},
		&cli.StringFlag{Name: "env-name", Usage: "virtual environment directory (overrides config)"},
		&cli.StringFlag{Name: "python", Usage: "interpreter used to create the environment (overrides config)"},
	}
}
