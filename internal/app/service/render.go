package service

import (
	"fmt"
	"time"

	"ton_portfolio/internal/app/port"
	"ton_portfolio/internal/domain/entity"
	"ton_portfolio/internal/pkg/utils"
)

const priceDateLayout = "2006-01-02"

// RenderTokenRows formats tokens for the balances table.
func RenderTokenRows(tokens []entity.Token, formatter port.AddressFormatter, precision int) []entity.TokenRow {
	rows := make([]entity.TokenRow, 0, len(tokens))
	for i, t := range tokens {
		rows = append(rows, renderTokenRow(i, t, formatter, precision))
	}
	return rows
}

func renderTokenRow(index int, t entity.Token, formatter port.AddressFormatter, precision int) entity.TokenRow {
	return entity.TokenRow{
		Index:           index,
		DisplayName:     t.DisplayName,
		ImageURL:        t.ImageURL,
		Symbol:          t.Symbol,
		ContractAddress: formatter.FormatContract(t.ContractAddress),
		Balance:         utils.FormatUnits(t.Balance, t.Decimals, precision),
	}
}

// RenderPriceRows formats the trailing limit points of a price history.
func RenderPriceRows(points []entity.PriceData, limit int) []entity.PriceRow {
	tail := utils.LastN(points, limit)
	rows := make([]entity.PriceRow, 0, len(tail))
	for _, p := range tail {
		rows = append(rows, entity.PriceRow{
			Date:  time.Unix(int64(p.Timestamp), 0).UTC().Format(priceDateLayout),
			Close: fmt.Sprintf("$%.6f", p.Close),
		})
	}
	return rows
}
