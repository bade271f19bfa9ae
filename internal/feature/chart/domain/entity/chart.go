package entity

// ChartType is the kind of plot built by the sink.
type ChartType string

const (
	ChartTypeLine ChartType = "line"
)

// ChartOptions is the declarative description handed to the chart sink.
type ChartOptions struct {
	Type     ChartType
	Title    string
	Subtitle string
	XAxis    Axis
	YAxis    Axis
	Tooltip  Tooltip
	// DataLabels toggles per-point value labels.
	DataLabels bool
	// MouseTracking enables hover interaction where the sink supports it.
	MouseTracking bool
	Series        []Series
	Credits       bool
}

// Axis describes one chart axis. Categories are only meaningful on the x axis.
type Axis struct {
	Title      string
	Categories []string
}

// Tooltip controls how point values are formatted.
type Tooltip struct {
	ValueDecimals int
	PointFormat   string
}

// Empty reports whether the options carry no data series.
func (o ChartOptions) Empty() bool {
	return len(o.Series) == 0
}
