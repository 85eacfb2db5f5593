package init_ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olimci/mlseed/pkg/scaffold"
)

type Params struct {
	// Templates to choose from. The list step is skipped when there is only
	// one, or when Selected names one of them.
	Templates []*scaffold.Template
	Selected  string
}

type Result struct {
	Template  *scaffold.Template
	Request   scaffold.Request
	Cancelled bool
}

type step int

const (
	stepSelectTemplate step = iota
	stepFields
)

type Model struct {
	step step

	template     *scaffold.Template
	templateList list.Model
	inputs       []textinput.Model
	focusIdx     int
	done         bool

	result Result
	err    error
}

func Run(ctx context.Context, params Params) (*Result, error) {
	model, err := NewModel(params)
	if err != nil {
		return nil, err
	}

	program := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}

	return &m.result, m.err
}

func NewModel(params Params) (*Model, error) {
	if len(params.Templates) == 0 {
		return nil, fmt.Errorf("no templates available")
	}

	m := &Model{}

	var chosen *scaffold.Template
	switch {
	case params.Selected != "":
		chosen = findTemplate(params.Templates, params.Selected)
		if chosen == nil {
			return nil, fmt.Errorf("%w %q", scaffold.ErrUnknownTemplate, params.Selected)
		}
	case len(params.Templates) == 1:
		chosen = params.Templates[0]
	}

	if chosen == nil {
		m.step = stepSelectTemplate
		m.templateList = buildTemplateList(params.Templates)
	} else {
		m.step = stepFields
		m.setTemplate(chosen)
	}

	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.step == stepSelectTemplate {
			m.templateList.SetSize(msg.Width, msg.Height-6)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.done = true
			m.result.Cancelled = true
			return m, tea.Quit
		}
	}

	switch m.step {
	case stepSelectTemplate:
		return m.updateSelectTemplate(msg)
	case stepFields:
		return m.updateFields(msg)
	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.done {
		return ""
	}
	switch m.step {
	case stepSelectTemplate:
		return m.templateList.View()
	case stepFields:
		return m.viewFields()
	default:
		return ""
	}
}

func (m *Model) updateSelectTemplate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		item, ok := m.templateList.SelectedItem().(templateItem)
		if !ok || item.tmpl == nil {
			return m, nil
		}
		m.setTemplate(item.tmpl)
		m.step = stepFields
		return m, nil
	}

	var cmd tea.Cmd
	m.templateList, cmd = m.templateList.Update(msg)
	return m, cmd
}

// Focus runs over the inputs and then the submit line at len(m.inputs).
func (m *Model) updateFields(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.focusIdx < len(m.inputs) {
				m.focusNext()
				return m, nil
			}
			m.captureResult()
			m.done = true
			return m, tea.Quit
		}
	}

	if m.focusIdx < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) viewFields() string {
	styles := initStyles()
	var b strings.Builder

	title := fmt.Sprintf("Project setup (%s):", m.template.Config.Metadata.Name)
	b.WriteString(styles.title.Render(title) + "\n\n")

	for i, key := range scaffold.Fields {
		block := styles.label.Render(fieldLabel(m.template, key))
		if desc := m.template.Config.Variables[key].Description; desc != "" {
			block += " " + styles.description.Render(desc)
		}
		block += "\n" + m.inputs[i].View()
		if m.focusIdx == i {
			block = styles.blockFocused.Render(block)
		} else {
			block = styles.blockUnfocused.Render(block)
		}
		b.WriteString(block)
		b.WriteString("\n\n")
	}

	submit := "Create project"
	if m.focusIdx == len(m.inputs) {
		submit = styles.submitFocused.Render(submit)
	} else {
		submit = styles.submit.Render(submit)
	}
	b.WriteString(submit)
	b.WriteString("\n\n")
	b.WriteString(styles.help.Render("tab/shift+tab move • enter next • esc cancel"))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) setTemplate(tmpl *scaffold.Template) {
	m.template = tmpl
	m.inputs = make([]textinput.Model, len(scaffold.Fields))
	for i, key := range scaffold.Fields {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = key
		applyTextInputStyles(&input)
		m.inputs[i] = input
	}

	m.focusIdx = 0
	m.syncFocus()
	m.result.Template = tmpl
}

func (m *Model) captureResult() {
	m.result.Template = m.template
	for i, key := range scaffold.Fields {
		if err := m.result.Request.Set(key, m.inputs[i].Value()); err != nil {
			m.err = err
			return
		}
	}
}

func (m *Model) focusNext() {
	m.focusIdx++
	if m.focusIdx > len(m.inputs) {
		m.focusIdx = 0
	}
	m.syncFocus()
}

func (m *Model) focusPrev() {
	m.focusIdx--
	if m.focusIdx < 0 {
		m.focusIdx = len(m.inputs)
	}
	m.syncFocus()
}

func (m *Model) syncFocus() {
	for i := range m.inputs {
		if i == m.focusIdx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func fieldLabel(tmpl *scaffold.Template, key string) string {
	if name := strings.TrimSpace(tmpl.Config.Variables[key].Name); name != "" {
		return name
	}
	return key
}
