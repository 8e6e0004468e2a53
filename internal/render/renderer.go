package render

import (
	"admgate/internal/charts"
	"admgate/internal/sections"
	"html/template"
	"io"

	json "github.com/goccy/go-json"
)

type NavItem struct {
	ID     sections.ID
	Title  string
	Active bool
}

// Page is the data every section template renders from.
type Page struct {
	Section    sections.ID
	Title      string
	Nav        []NavItem
	Layout     sections.Layout
	Toast      string
	ToastType  string
	LoadFailed bool
	Data       any
	ChartsJSON template.JS
}

// NewPage builds the chrome shared by all sections: title lookup and the nav
// bar with exactly one active item.
func NewPage(section sections.ID, layout sections.Layout) *Page {
	p := &Page{
		Section: section,
		Title:   sections.Titles[section],
		Layout:  layout,
	}
	for _, id := range sections.All {
		p.Nav = append(p.Nav, NavItem{ID: id, Title: sections.Titles[id], Active: id == section})
	}
	return p
}

// SetCharts embeds chart configs as JSON for the Chart.js bootstrap.
func (p *Page) SetCharts(configs map[string]*charts.Config) error {
	if len(configs) == 0 {
		return nil
	}
	raw, err := json.Marshal(configs)
	if err != nil {
		return err
	}
	p.ChartsJSON = template.JS(raw)
	return nil
}

type Renderer struct {
	pages     map[sections.ID]*template.Template
	fragments *template.Template
}

var sectionTemplates = map[sections.ID]string{
	sections.Overview:      tmplOverview,
	sections.Users:         tmplUsers,
	sections.Modes:         tmplModes,
	sections.Conversations: tmplConversations,
	sections.Scripts:       tmplScripts,
	sections.Generations:   tmplGenerations,
	sections.Analytics:     tmplAnalytics,
}

func NewRenderer() *Renderer {
	pages := make(map[sections.ID]*template.Template, len(sectionTemplates))
	for id, content := range sectionTemplates {
		pages[id] = template.Must(template.New(string(id)).Funcs(funcMap).
			Parse(tmplBase + tmplModalShells + content))
	}

	fragments := template.Must(template.New("fragments").Funcs(funcMap).
		Parse(tmplConversationFragment + tmplScriptFragment))

	return &Renderer{pages: pages, fragments: fragments}
}

func (r *Renderer) Page(w io.Writer, p *Page) error {
	return r.pages[p.Section].ExecuteTemplate(w, "base", p)
}

func (r *Renderer) Fragment(w io.Writer, name string, data any) error {
	return r.fragments.ExecuteTemplate(w, name, data)
}
