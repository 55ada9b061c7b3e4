// Package report turns matchup records into presentation shapes: tables and
// charts for the web client, XLSX workbooks and aligned text for the CLI.
package report

// TableData is a rendered table. Every cell is already formatted.
type TableData struct {
	Title   string        `json:"title"`
	Columns []Column      `json:"columns"`
	Rows    [][]string    `json:"rows"`
	Summary *TableSummary `json:"summary,omitempty"`
}

type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "verdict"
	Align string `json:"align"` // "left", "center", "right"
}

type TableSummary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// ChartConfig is the chart description the web client renders.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
