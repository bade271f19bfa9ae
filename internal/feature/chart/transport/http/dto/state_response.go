package dto

// StateResponse is the JSON view of the dashboard state.
type StateResponse struct {
	DarkMode  bool           `json:"darkMode"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Status    string         `json:"status"`
	Chart     *ChartResponse `json:"chart,omitempty"`
}

// ChartResponse describes the chart currently mounted.
type ChartResponse struct {
	Title      string           `json:"title"`
	Subtitle   string           `json:"subtitle,omitempty"`
	XAxisTitle string           `json:"xAxisTitle"`
	YAxisTitle string           `json:"yAxisTitle"`
	Categories []string         `json:"categories"`
	Series     []SeriesResponse `json:"series"`
}

// SeriesResponse is one currency line; null marks an absent point.
type SeriesResponse struct {
	Name string     `json:"name"`
	Data []*float64 `json:"data"`
}
