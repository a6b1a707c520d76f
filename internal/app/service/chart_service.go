package service

import (
	"ton_portfolio/internal/app/port"
	"ton_portfolio/internal/domain/entity"
)

// chartServiceImpl serves a fixed placeholder series until a chart data source exists.
type chartServiceImpl struct {
	logger port.Logger
}

// NewChartService creates the placeholder chart service.
func NewChartService(l port.Logger) port.ChartService {
	return &chartServiceImpl{logger: l}
}

// Chart returns the placeholder series; contractAddress does not change the data.
func (s *chartServiceImpl) Chart(contractAddress string) entity.ChartData {
	s.logger.Debug("Serving placeholder chart", "contract", contractAddress)
	return entity.ChartData{
		Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		Datasets: []entity.ChartDataset{
			{
				Label:       "Prix",
				Data:        []float64{65, 59, 80, 81, 56, 55},
				Fill:        false,
				BorderColor: "rgb(75, 192, 192)",
				Tension:     0.1,
			},
		},
	}
}
