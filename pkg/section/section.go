package section

import (
	"fmt"
	"html"

	"github.com/nbforge/quickchart/pkg/core"
)

// SectionTitle is a label-only displayable that renders as a heading.
type SectionTitle struct {
	Title string
}

// HTML implements core.Displayable.
func (t SectionTitle) HTML() (string, error) {
	return fmt.Sprintf(`<h4 class="quickchart-section-title">%s</h4>`, html.EscapeString(t.Title)), nil
}

// Display emits the title to the host surface.
func (t SectionTitle) Display(d core.Displayer) error {
	return d.Display(t)
}

// ChartSection is an ordered, immutable-after-construction bundle of a
// title and charts, treated as one displayable unit.
type ChartSection struct {
	title        string
	charts       []*ChartWithCode
	displayables []core.Displayable
}

// NewChartSection bundles charts under a title. Displayed in order:
// title first, then every chart.
func NewChartSection(title string, charts []*ChartWithCode) *ChartSection {
	displayables := make([]core.Displayable, 0, len(charts)+1)
	displayables = append(displayables, SectionTitle{Title: title})
	for _, c := range charts {
		displayables = append(displayables, c)
	}
	return &ChartSection{title: title, charts: charts, displayables: displayables}
}

// Title returns the section label.
func (s *ChartSection) Title() string {
	return s.title
}

// Charts exposes the chart list read-only, for callers that want
// provenance (e.g. bulk code export) without triggering display.
func (s *ChartSection) Charts() []*ChartWithCode {
	out := make([]*ChartWithCode, len(s.charts))
	copy(out, s.charts)
	return out
}

// Display renders the title followed by every chart in original order.
// The first display error aborts.
func (s *ChartSection) Display(d core.Displayer) error {
	for _, item := range s.displayables {
		if err := d.Display(item); err != nil {
			return err
		}
	}
	return nil
}

var _ core.Displayable = SectionTitle{}
