package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/olimci/mlseed/pkg/config"
	"github.com/olimci/mlseed/pkg/scaffold"
	"github.com/urfave/cli/v3"
)

func runTemplates(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"), cmd.IsSet("config"))
	if err != nil {
		return err
	}
	if cmd.IsSet("templates-dir") {
		cfg.Scaffold.TemplatesDir = strings.TrimSpace(cmd.String("templates-dir"))
	}

	registry, err := scaffold.NewRegistry(cfg.Scaffold.TemplatesDir)
	if err != nil {
		return err
	}

	out := writer(cmd)
	fmt.Fprintln(out, "Available templates:")
	fmt.Fprintln(out)

	for _, tmpl := range registry.All() {
		meta := tmpl.Config.Metadata
		marker := " "
		if meta.Name == cfg.Scaffold.Template {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-12s  %-8s  %s\n", marker, meta.Name, meta.Version, meta.Description)
		fmt.Fprintf(out, "  %-12s  %d files, filled from: %s\n", "", len(tmpl.Config.Files), strings.Join(tmpl.BodyNames(), ", "))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use: mlseed init --template <name>")

	return nil
}
