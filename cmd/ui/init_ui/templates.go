package init_ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/olimci/mlseed/pkg/scaffold"
)

type templateItem struct {
	title string
	desc  string
	tmpl  *scaffold.Template
}

func (t templateItem) Title() string       { return t.title }
func (t templateItem) Description() string { return t.desc }
func (t templateItem) FilterValue() string { return t.title }

func buildTemplateList(templates []*scaffold.Template) list.Model {
	items := make([]list.Item, 0, len(templates))
	for _, tmpl := range templates {
		desc := tmpl.Config.Metadata.Description
		if desc == "" {
			desc = tmpl.Config.Metadata.Version
		}
		items = append(items, templateItem{
			title: tmpl.Config.Metadata.Name,
			desc:  desc,
			tmpl:  tmpl,
		})
	}

	delegate := list.NewDefaultDelegate()
	styles := initStyles()
	delegate.Styles.SelectedTitle = styles.listSelectedTitle
	delegate.Styles.SelectedDesc = styles.listSelectedDesc
	delegate.Styles.NormalTitle = styles.listNormalTitle
	delegate.Styles.NormalDesc = styles.listNormalDesc

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select a template:"
	l.Styles.Title = styles.listTitle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

func findTemplate(templates []*scaffold.Template, name string) *scaffold.Template {
	for _, tmpl := range templates {
		if tmpl.Config.Metadata.Name == name {
			return tmpl
		}
	}
	return nil
}
