package entity

// ChartData mirrors the chart.js line chart input shape.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is one series of a line chart.
type ChartDataset struct {
	Label       string    `json:"label"`
	Data        []float64 `json:"data"`
	Fill        bool      `json:"fill"`
	BorderColor string    `json:"borderColor"`
	Tension     float64   `json:"tension"`
}
