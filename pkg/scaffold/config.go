package scaffold

// TemplateFile is the manifest every template directory carries.
const TemplateFile = "template.toml"

type TemplateCfg struct {
	Metadata  TemplateCfgMeta            `toml:"metadata"`
	Logging   TemplateCfgLogging         `toml:"logging"`
	Variables map[string]TemplateCfgVar  `toml:"variables"`
	Templates map[string]TemplateCfgBody `toml:"templates"`
	Files     []TemplateCfgFile          `toml:"files"`
}

type TemplateCfgMeta struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Version     string `toml:"version"`
	MinVersion  string `toml:"min_version"`
}

// TemplateCfgLogging describes the log sink the generated project sets up.
type TemplateCfgLogging struct {
	Dir    string `toml:"dir"`
	File   string `toml:"file"`
	Format string `toml:"format"`
}

// TemplateCfgVar labels one request field for prompting.
type TemplateCfgVar struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// TemplateCfgBody is a named content template and the slots it substitutes.
type TemplateCfgBody struct {
	Source string   `toml:"source"`
	Slots  []string `toml:"slots"`
}

// TemplateCfgFile is one entry of the file list. Path is a text/template
// string; Template names a body, or is empty for a zero-byte file.
type TemplateCfgFile struct {
	Path     string `toml:"path"`
	Template string `toml:"template"`
}

const (
	defaultLogDir    = "logs"
	defaultLogFile   = "running_logs.log"
	defaultLogFormat = "[%(asctime)s: %(levelname)s: %(module)s: %(message)s]"
)

func (c *TemplateCfg) applyDefaults() {
	if c.Logging.Dir == "" {
		c.Logging.Dir = defaultLogDir
	}
	if c.Logging.File == "" {
		c.Logging.File = defaultLogFile
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Variables == nil {
		c.Variables = make(map[string]TemplateCfgVar)
	}
	if c.Templates == nil {
		c.Templates = make(map[string]TemplateCfgBody)
	}
}
