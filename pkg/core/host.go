package core

// Displayable is anything the host can show in place. The markup may
// embed interactive script and style.
type Displayable interface {
	// HTML renders the object as markup.
	HTML() (string, error)
}

// Displayer is the host's display surface.
type Displayer interface {
	Display(d Displayable) error
}

// CodePayload is the structured response returned to the host when it
// requests the code behind a displayed chart.
type CodePayload struct {
	ChartID string `json:"chart_id"`
	Code    string `json:"code"`
}

// CodeBridge is the server-side half of the host's click-to-code round
// trip: given a chart identifier the host received from a click event,
// it returns the code that rebuilds that chart. Stale or unknown
// identifiers fail with ErrUnknownChart.
type CodeBridge interface {
	CodeForChart(id string) (CodePayload, error)
}
