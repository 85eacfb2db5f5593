package cmd

import (
	"github.com/urfave/cli/v3"
)

// xCmd returns the non-interactive subcommand group
func xCmd() *cli.Command {
	return &cli.Command{
		Name:  "x",
		Usage: "Non-interactive commands (for scripts and CI)",
		Commands: []*cli.Command{
			xInitCmd(),
			xWriteCmd(),
		},
	}
}

func xInitCmd() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "repo-name", Usage: "GitHub repository name"},
		&cli.StringFlag{Name: "username", Usage: "GitHub username"},
		&cli.StringFlag{Name: "package", Usage: "source package folder under src/"},
		&cli.StringFlag{Name: "email", Usage: "author email"},
		&cli.StringSliceFlag{
			Name:  "var",
			Usage: "project detail (key=value, repeatable; keys RepoName, Username, Package, AuthorEmail)",
		},
		&cli.StringFlag{
			Name:  "vars-file",
			Usage: "project details file (.toml, .yaml, .yml, .json)",
		},
	}
	flags = append(flags, scaffoldFlags()...)
	flags = append(flags, envFlags()...)

	return &cli.Command{
		Name:      "init",
		Usage:     "Scaffold a project from flags (non-interactive)",
		ArgsUsage: "[directory]",
		Flags:     flags,
		Action:    runXInit,
	}
}

func xWriteCmd() *cli.Command {
	return &cli.Command{
		Name:      "write",
		Usage:     "Write text to a file, reporting success or failure",
		ArgsUsage: "<path> [text]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "stdin", Usage: "read the text from standard input"},
		},
		Action: runXWrite,
	}
}
