package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olimci/mlseed/pkg/config"
	"github.com/olimci/mlseed/pkg/scaffold"
	"github.com/urfave/cli/v3"
)

// fieldFlags maps request fields to their x init flags.
var fieldFlags = map[string]string{
	scaffold.FieldRepoName:    "repo-name",
	scaffold.FieldUsername:    "username",
	scaffold.FieldPackage:     "package",
	scaffold.FieldAuthorEmail: "email",
}

func runXInit(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() > 1 {
		return fmt.Errorf("too many arguments!")
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	target, err := targetDir(cmd)
	if err != nil {
		return fmt.Errorf("resolving target directory: %w", err)
	}

	tmpl, err := s.template()
	if err != nil {
		return err
	}

	req, err := loadXInitRequest(cmd)
	if err != nil {
		return err
	}

	if _, err := s.generate(ctx, tmpl, target, req); err != nil {
		return err
	}

	return s.setupEnv(ctx, target, envSteps{
		skip:    cmd.Bool("no-env"),
		noShell: cmd.Bool("no-shell"),
	})
}

// loadXInitRequest layers the vars file, then --var pairs, then the field
// flags. Later sources win.
func loadXInitRequest(cmd *cli.Command) (scaffold.Request, error) {
	vars := make(map[string]string)

	if path := strings.TrimSpace(cmd.String("vars-file")); path != "" {
		fileVars, err := config.DecodeValues(path)
		if err != nil {
			return scaffold.Request{}, err
		}
		for key, value := range fileVars {
			vars[key] = value
		}
	}

	pairs, err := parseVarPairs(cmd.StringSlice("var"))
	if err != nil {
		return scaffold.Request{}, err
	}
	for key, value := range pairs {
		vars[key] = value
	}

	for key, flag := range fieldFlags {
		if cmd.IsSet(flag) {
			vars[key] = cmd.String(flag)
		}
	}

	return requestFromVars(vars)
}

func parseVarPairs(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --var %q (expected key=value)", pair)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid --var %q (empty key)", pair)
		}
		vars[key] = strings.TrimSpace(val)
	}
	return vars, nil
}

// requestFromVars rejects unknown keys so a typo does not silently become an
// empty field.
func requestFromVars(vars map[string]string) (scaffold.Request, error) {
	var req scaffold.Request

	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := req.Set(key, vars[key]); err != nil {
			return scaffold.Request{}, err
		}
	}

	return req, nil
}

func runXWrite(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 || cmd.NArg() > 2 {
		return fmt.Errorf("expected <path> [text]")
	}

	text := cmd.Args().Get(1)
	if cmd.Bool("stdin") {
		if cmd.NArg() == 2 {
			return fmt.Errorf("text given both as argument and --stdin")
		}
		data, err := io.ReadAll(reader(cmd))
		if err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}
		text = string(data)
	}

	logger := newLogger(writer(cmd), config.DefaultConfig().LogLevel(), false)
	return scaffold.WriteText(cmd.Args().First(), text, logHandler{logger: logger})
}
