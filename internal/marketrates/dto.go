package marketrates

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
)

// RateResponse is the public market rate shape. Prices are rupees with two
// decimal places, serialized as JSON numbers.
type RateResponse struct {
	ID            string          `json:"id"`
	ProductName   string          `json:"product_name"`
	ProductNameNe string          `json:"product_name_ne"`
	Category      string          `json:"category"`
	District      string          `json:"district"`
	Province      string          `json:"province"`
	MinPrice      decimal.Decimal `json:"min_price"`
	MaxPrice      decimal.Decimal `json:"max_price"`
	AvgPrice      decimal.Decimal `json:"avg_price"`
	Unit          string          `json:"unit"`
	LastUpdated   time.Time       `json:"last_updated"`
}

func responseFromModel(rate models.MarketRate) RateResponse {
	return RateResponse{
		ID:            rate.ID.String(),
		ProductName:   rate.ProductName,
		ProductNameNe: rate.ProductNameNe,
		Category:      string(rate.Category),
		District:      rate.District,
		Province:      rate.Province,
		MinPrice:      rate.MinPrice,
		MaxPrice:      rate.MaxPrice,
		AvgPrice:      rate.AvgPrice,
		Unit:          rate.Unit,
		LastUpdated:   rate.LastUpdated,
	}
}

func responsesFromModels(rows []models.MarketRate) []RateResponse {
	out := make([]RateResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, responseFromModel(row))
	}
	return out
}
