// Package venv creates and enters the Python virtual environment of a freshly
// scaffolded project.
package venv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// DefaultName is the environment directory created next to the scaffold.
const DefaultName = "myenv"

// Runner runs one external command to completion.
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
}

// ExecRunner runs commands with the given stdio attached.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return &CommandError{Command: command(name, args), Err: err}
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return &CommandError{Command: command(name, args), Err: err}
	}
	return nil
}

// CommandError is returned for any external command that failed to start or
// exited non-zero.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("running %q: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

type Env struct {
	// Name is the environment directory, relative to Dir.
	Name string
	// Dir is where commands run; the scaffold root.
	Dir string
	// Python overrides the interpreter used to create the environment.
	Python string
	// GOOS selects the Windows or POSIX commands. Defaults to runtime.GOOS.
	GOOS string

	runner Runner
}

func New(dir string, runner Runner) *Env {
	if runner == nil {
		runner = NewExecRunner()
	}
	return &Env{
		Name:   DefaultName,
		Dir:    dir,
		GOOS:   runtime.GOOS,
		runner: runner,
	}
}

func (e *Env) IsWindows() bool {
	return strings.EqualFold(e.GOOS, "windows")
}

// CreateCommand is the command Create runs.
func (e *Env) CreateCommand() []string {
	python := e.Python
	if python == "" {
		python = "python3"
		if e.IsWindows() {
			python = "python"
		}
	}
	return []string{python, "-m", "venv", e.name()}
}

// PolicyCommand is the command RelaxExecutionPolicy runs, nil off Windows.
func (e *Env) PolicyCommand() []string {
	if !e.IsWindows() {
		return nil
	}
	return []string{
		"powershell",
		"Set-ExecutionPolicy",
		"-Scope", "CurrentUser",
		"-ExecutionPolicy", "Unrestricted",
		"-Force",
	}
}

// ActivateCommand is the interactive shell Activate spawns.
func (e *Env) ActivateCommand() []string {
	if e.IsWindows() {
		return []string{"powershell", "-NoExit", "-Command", `.\` + e.name() + `\Scripts\Activate.ps1`}
	}
	return []string{"bash", "-c", fmt.Sprintf("source %s/bin/activate && exec bash -i", shellQuote(e.name()))}
}

func (e *Env) Create(ctx context.Context) error {
	return e.run(ctx, e.CreateCommand())
}

// RelaxExecutionPolicy lets PowerShell run the activation script. It does
// nothing and reports false off Windows.
func (e *Env) RelaxExecutionPolicy(ctx context.Context) (bool, error) {
	cmd := e.PolicyCommand()
	if cmd == nil {
		return false, nil
	}
	return true, e.run(ctx, cmd)
}

// Activate blocks until the user leaves the spawned shell. The shell's own
// exit status is the user's business and is not reported.
func (e *Env) Activate(ctx context.Context) error {
	err := e.run(ctx, e.ActivateCommand())

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}

func (e *Env) run(ctx context.Context, argv []string) error {
	return e.runner.Run(ctx, e.Dir, argv[0], argv[1:]...)
}

func (e *Env) name() string {
	if e.Name == "" {
		return DefaultName
	}
	return e.Name
}

func command(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`;&|<>()*?[]{}!#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
