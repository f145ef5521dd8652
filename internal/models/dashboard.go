// Rentalytics - Video Rental Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rentalytics

package models

// ChartKind tells the page which Plotly trace type to draw.
type ChartKind string

const (
	ChartBar        ChartKind = "bar"
	ChartHBar       ChartKind = "hbar"
	ChartGroupedBar ChartKind = "grouped_bar"
	ChartLine       ChartKind = "line"
	ChartArea       ChartKind = "area"
	ChartScatter    ChartKind = "scatter"
	ChartHeatmap    ChartKind = "heatmap"
)

// TabInfo identifies one dashboard tab.
type TabInfo struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Dataset string `json:"dataset"`
}

// TabReport is everything one tab renders: preview, KPI cards, charts and
// segment summaries. Blocks whose columns are missing are listed in Skipped.
type TabReport struct {
	TabInfo
	Preview  *Table           `json:"preview"`
	KPIs     []KPICard        `json:"kpis"`
	Charts   []Chart          `json:"charts"`
	Segments []SegmentSummary `json:"segments,omitempty"`
	Skipped  []string         `json:"skipped,omitempty"`
}

// KPICard is a single summary statistic rendered as a labeled tile.
// Value is display-formatted; Raw keeps the number for clients that reformat it.
type KPICard struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Value  string  `json:"value"`
	Raw    float64 `json:"raw"`
	Detail string  `json:"detail,omitempty"`
}

// Chart is a renderable chart specification.
// Bar, line, area and scatter charts use Series; heatmaps use Matrix.
type Chart struct {
	ID      string    `json:"id"`
	Kind    ChartKind `json:"kind"`
	Title   string    `json:"title"`
	XLabel  string    `json:"x_label,omitempty"`
	YLabel  string    `json:"y_label,omitempty"`
	Caption string    `json:"caption"`
	Series  []Series  `json:"series,omitempty"`
	Matrix  *Matrix   `json:"matrix,omitempty"`
}

// Series is one trace. Categorical charts fill Labels and Values; scatter
// charts fill Points.
type Series struct {
	Name   string    `json:"name"`
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`
	Points []Point   `json:"points,omitempty"`
}

// Point is a labeled scatter point.
type Point struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Matrix is a dense pivot table for heatmaps. Values[i][j] belongs to Rows[i]
// and Columns[j].
type Matrix struct {
	Rows    []string    `json:"rows"`
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// Table is a small tabular payload (previews, segment listings).
type Table struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

// SegmentSummary reports a quantile segmentation: the thresholds used, the
// flagged rows and their share of the dataset.
type SegmentSummary struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Segment            string  `json:"segment"`
	FrequencyColumn    string  `json:"frequency_column"`
	FrequencyThreshold float64 `json:"frequency_threshold"`
	ValueColumn        string  `json:"value_column"`
	ValueThreshold     float64 `json:"value_threshold"`
	Count              int64   `json:"count"`
	Total              int64   `json:"total"`
	Percent            float64 `json:"percent"`
	Summary            string  `json:"summary"`
	Table              *Table  `json:"table"`
}
