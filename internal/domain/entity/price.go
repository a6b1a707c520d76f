package entity

// PriceData is one OHLCV point of a token price history.
type PriceData struct {
	Timestamp float64 `json:"timestamp"` // unix seconds, may carry a fraction
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}
