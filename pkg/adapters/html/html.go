// Package html renders displayables and assembles standalone report
// pages for hosts that are not a live notebook surface.
package html

import (
	"fmt"
	"html/template"
	"io"

	"github.com/nbforge/quickchart/pkg/core"
	"github.com/nbforge/quickchart/pkg/section"
)

// Renderer is a core.Displayer that appends markup to a writer, in
// display order.
type Renderer struct {
	W io.Writer
}

// Display implements core.Displayer.
func (r Renderer) Display(d core.Displayable) error {
	markup, err := d.HTML()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(r.W, markup); err != nil {
		return err
	}
	_, err = io.WriteString(r.W, "\n")
	return err
}

// DefaultChartsPerRow is the row width used when a page does not set
// its own.
const DefaultChartsPerRow = 3

// Page assembles chart sections into one standalone HTML document.
type Page struct {
	Title        string
	ChartsPerRow int
	sections     []*section.ChartSection
}

// NewPage creates an empty page.
func NewPage(title string) *Page {
	return &Page{Title: title, ChartsPerRow: DefaultChartsPerRow}
}

// Add appends a section to the page in display order.
func (p *Page) Add(sec *section.ChartSection) {
	p.sections = append(p.sections, sec)
}

type pageSection struct {
	Title template.HTML
	Rows  [][]template.HTML
}

type pageData struct {
	Title    string
	Sections []pageSection
}

// Render writes the full document to w. Charts are laid out row by
// row, ChartsPerRow per row with the remainder on the last row.
func (p *Page) Render(w io.Writer) error {
	perRow := p.ChartsPerRow
	if perRow <= 0 {
		perRow = DefaultChartsPerRow
	}

	data := pageData{Title: p.Title}
	for _, sec := range p.sections {
		title, err := (section.SectionTitle{Title: sec.Title()}).HTML()
		if err != nil {
			return err
		}
		ps := pageSection{Title: template.HTML(title)}

		for chunk := range section.Chunked(sec.Charts(), perRow) {
			var row []template.HTML
			for _, c := range chunk {
				markup, err := c.HTML()
				if err != nil {
					return fmt.Errorf("failed to render chart %s: %w", c.ID(), err)
				}
				row = append(row, template.HTML(markup))
			}
			ps.Rows = append(ps.Rows, row)
		}
		data.Sections = append(data.Sections, ps)
	}

	return pageTmpl.Execute(w, data)
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: sans-serif; margin: 1em 2em; }
  .quickchart-row { display: flex; flex-wrap: wrap; clear: both; }
</style>
</head>
<body>
<h2>{{.Title}}</h2>
{{- range .Sections}}
{{.Title}}
{{- range .Rows}}
<div class="quickchart-row">
{{- range .}}
{{.}}
{{- end}}
</div>
{{- end}}
{{- end}}
</body>
</html>
`))
