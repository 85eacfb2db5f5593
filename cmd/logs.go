package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/olimci/mlseed/pkg/events"
)

const logTimeFormat = "2006-01-02 15:04:05"

func newLogger(out io.Writer, level log.Level, timestamps bool) *log.Logger {
	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		TimeFormat:      logTimeFormat,
	})
	if isTerminal(out) {
		logger.SetStyles(richStyles())
	}
	return logger
}

func isTerminal(out any) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func richStyles() *log.Styles {
	styles := log.DefaultStyles()
	levels := map[log.Level]lipgloss.Color{
		log.DebugLevel: lipgloss.Color("#6c7086"), // muted
		log.InfoLevel:  lipgloss.Color("#89b4fa"), // blue
		log.WarnLevel:  lipgloss.Color("#f9e2af"), // yellow
		log.ErrorLevel: lipgloss.Color("#f38ba8"), // red
	}
	for level, color := range levels {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(strings.ToUpper(level.String())).
			Bold(true).
			MaxWidth(4).
			Foreground(color)
	}
	styles.Keys["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))  // grey
	styles.Values["path"] = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")) // text
	styles.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	return styles
}

// logHandler prints generator events through a logger.
type logHandler struct {
	logger *log.Logger
}

func (h logHandler) Handle(event events.Event) {
	var kv []any
	if event.Path != "" {
		kv = append(kv, "path", event.Path)
	}

	switch event.Level {
	case events.Debug:
		h.logger.Debug(event.Message, kv...)
	case events.Error:
		if event.Error != nil {
			kv = append(kv, "err", event.Error)
		}
		h.logger.Error(event.Message, kv...)
	default:
		h.logger.Info(event.Message, kv...)
	}
}
