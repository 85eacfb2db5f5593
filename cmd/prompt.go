package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/olimci/mlseed/pkg/scaffold"
)

// promptLines asks for each request field in field order through huh's
// accessible form, one line of input per field.
func promptLines(ctx context.Context, in io.Reader, out io.Writer, tmpl *scaffold.Template) (scaffold.Request, error) {
	var req scaffold.Request

	values := make([]string, len(scaffold.Fields))
	fields := make([]huh.Field, len(scaffold.Fields))
	for i, key := range scaffold.Fields {
		fields[i] = huh.NewInput().
			Key(key).
			Title(promptText(tmpl, key)).
			Value(&values[i])
	}

	lines := &lineReader{r: bufio.NewReader(in)}
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithAccessible(true).
		WithInput(lines).
		WithOutput(out)

	if err := form.RunWithContext(ctx); err != nil {
		return req, err
	}
	if lines.err != nil && !errors.Is(lines.err, io.EOF) {
		return req, fmt.Errorf("reading project details: %w", lines.err)
	}
	if lines.count < len(scaffold.Fields) {
		return req, fmt.Errorf("reading %s: %w", scaffold.Fields[lines.count], io.ErrUnexpectedEOF)
	}

	for i, key := range scaffold.Fields {
		if err := req.Set(key, values[i]); err != nil {
			return req, err
		}
	}

	return req, nil
}

// lineReader hands out at most one line per Read, so a field that wraps the
// input in its own scanner cannot consume the answers of the fields after it.
type lineReader struct {
	r     *bufio.Reader
	count int
	err   error
}

func (l *lineReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := l.r.ReadByte()
		if err != nil {
			if n > 0 {
				l.count++
				return n, nil
			}
			l.err = err
			return 0, err
		}
		p[n] = b
		n++
		if b == '\n' {
			l.count++
			break
		}
	}
	return n, nil
}

func promptText(tmpl *scaffold.Template, key string) string {
	v := tmpl.Config.Variables[key]

	label := strings.TrimSpace(v.Name)
	if label == "" {
		label = key
	}
	if v.Description != "" {
		return fmt.Sprintf("Enter %s (%s):", label, v.Description)
	}
	return fmt.Sprintf("Enter %s:", label)
}

// confirm asks a yes/no question in the terminal. Aborting the prompt counts
// as no.
func confirm(ctx context.Context, title string) (bool, error) {
	ok := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	))

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}
