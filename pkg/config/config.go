package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/olimci/mlseed/pkg/scaffold"
)

// DefaultPath is looked up in the working directory when no --config is given.
const DefaultPath = "mlseed.toml"

// Config is the mlseed tool configuration. Every field has a usable default,
// so the file is optional.
type Config struct {
	Scaffold ConfigScaffold `toml:"scaffold" yaml:"scaffold" json:"scaffold"`
	Env      ConfigEnv      `toml:"env" yaml:"env" json:"env"`
	Log      ConfigLog      `toml:"log" yaml:"log" json:"log"`
}

type ConfigScaffold struct {
	Template     string `toml:"template" yaml:"template" json:"template"`
	TemplatesDir string `toml:"templates_dir" yaml:"templates_dir" json:"templates_dir"`
	OnError      string `toml:"on_error" yaml:"on_error" json:"on_error"`
	Strict       bool   `toml:"strict" yaml:"strict" json:"strict"`
}

type ConfigEnv struct {
	Name        string `toml:"name" yaml:"name" json:"name"`
	Python      string `toml:"python" yaml:"python" json:"python"`
	Create      *bool  `toml:"create" yaml:"create" json:"create"`
	Activate    *bool  `toml:"activate" yaml:"activate" json:"activate"`
	RelaxPolicy *bool  `toml:"relax_policy" yaml:"relax_policy" json:"relax_policy"`
}

type ConfigLog struct {
	Level      string `toml:"level" yaml:"level" json:"level"`
	Timestamps *bool  `toml:"timestamps" yaml:"timestamps" json:"timestamps"`
}

// DefaultConfig constructs a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Scaffold: ConfigScaffold{
			Template: scaffold.DefaultTemplate,
			OnError:  scaffold.Abort.String(),
		},
		Env: ConfigEnv{
			Name:        "myenv",
			Create:      boolPtr(true),
			Activate:    boolPtr(true),
			RelaxPolicy: boolPtr(true),
		},
		Log: ConfigLog{
			Level:      "info",
			Timestamps: boolPtr(true),
		},
	}
}

// Load reads path over the defaults. A missing file is only an error when
// required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if required {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		return cfg, nil
	}

	var file Config
	if err := decodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	cfg.merge(file)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) merge(o Config) {
	setString(&c.Scaffold.Template, o.Scaffold.Template)
	setString(&c.Scaffold.TemplatesDir, o.Scaffold.TemplatesDir)
	setString(&c.Scaffold.OnError, o.Scaffold.OnError)
	c.Scaffold.Strict = c.Scaffold.Strict || o.Scaffold.Strict

	setString(&c.Env.Name, o.Env.Name)
	setString(&c.Env.Python, o.Env.Python)
	setBool(&c.Env.Create, o.Env.Create)
	setBool(&c.Env.Activate, o.Env.Activate)
	setBool(&c.Env.RelaxPolicy, o.Env.RelaxPolicy)

	setString(&c.Log.Level, o.Log.Level)
	setBool(&c.Log.Timestamps, o.Log.Timestamps)
}

func (c *Config) Validate() error {
	var errs []error

	if _, err := scaffold.ParseErrorPolicy(c.Scaffold.OnError); err != nil {
		errs = append(errs, fmt.Errorf("scaffold.on_error: %w", err))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if strings.ContainsAny(c.Env.Name, `/\`) {
		errs = append(errs, fmt.Errorf("env.name %q must be a plain directory name", c.Env.Name))
	}

	return errors.Join(errs...)
}

func (c *Config) ErrorPolicy() scaffold.ErrorPolicy {
	p, _ := scaffold.ParseErrorPolicy(c.Scaffold.OnError)
	return p
}

func (c *Config) LogLevel() log.Level {
	l, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

func Enabled(b *bool) bool {
	return b == nil || *b
}

func boolPtr(b bool) *bool {
	return &b
}

func setString(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setBool(dst **bool, v *bool) {
	if v != nil {
		*dst = boolPtr(*v)
	}
}
