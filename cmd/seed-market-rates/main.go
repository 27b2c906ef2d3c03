package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/config"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/logger"
)

type seedRate struct {
	name     string
	nameNe   string
	category enums.RateCategory
	district string
	province string
	min      float64
	max      float64
	avg      float64
	unit     string
}

var seedRates = []seedRate{
	// vegetables
	{"Tomato", "गोलभेडा", enums.RateCategoryVegetable, "Kathmandu", "Bagmati", 40, 60, 50, "kg"},
	{"Tomato", "गोलभेडा", enums.RateCategoryVegetable, "Kaski", "Gandaki", 35, 55, 45, "kg"},
	{"Tomato", "गोलभेडा", enums.RateCategoryVegetable, "Chitwan", "Bagmati", 30, 50, 40, "kg"},
	{"Potato", "आलु", enums.RateCategoryVegetable, "Kathmandu", "Bagmati", 30, 45, 38, "kg"},
	{"Potato", "आलु", enums.RateCategoryVegetable, "Kaski", "Gandaki", 28, 42, 35, "kg"},
	{"Onion", "प्याज", enums.RateCategoryVegetable, "Kathmandu", "Bagmati", 50, 70, 60, "kg"},
	{"Cauliflower", "काउली", enums.RateCategoryVegetable, "Kathmandu", "Bagmati", 60, 80, 70, "kg"},
	{"Cabbage", "बन्दा", enums.RateCategoryVegetable, "Kathmandu", "Bagmati", 35, 50, 43, "kg"},
	{"Carrot", "गाजर", enums.RateCategoryVegetable, "Kathmandu", "Bagmati", 45, 65, 55, "kg"},
	{"Spinach", "पालुंगो", enums.RateCategoryVegetable, "Kathmandu", "Bagmati", 40, 60, 50, "kg"},

	// fruits
	{"Apple", "स्याउ", enums.RateCategoryFruit, "Kathmandu", "Bagmati", 180, 250, 215, "kg"},
	{"Apple", "स्याउ", enums.RateCategoryFruit, "Kaski", "Gandaki", 170, 240, 205, "kg"},
	{"Banana", "केरा", enums.RateCategoryFruit, "Kathmandu", "Bagmati", 80, 120, 100, "dozen"},
	{"Orange", "सुन्तला", enums.RateCategoryFruit, "Kathmandu", "Bagmati", 100, 140, 120, "kg"},
	{"Mango", "आँप", enums.RateCategoryFruit, "Kathmandu", "Bagmati", 120, 180, 150, "kg"},
	{"Papaya", "मेवा", enums.RateCategoryFruit, "Kathmandu", "Bagmati", 50, 80, 65, "kg"},

	// grains
	{"Rice", "चामल", enums.RateCategoryGrain, "Kathmandu", "Bagmati", 60, 90, 75, "kg"},
	{"Rice", "चामल", enums.RateCategoryGrain, "Kaski", "Gandaki", 58, 88, 73, "kg"},
	{"Wheat", "गहुँ", enums.RateCategoryGrain, "Kathmandu", "Bagmati", 45, 65, 55, "kg"},
	{"Lentils", "दाल", enums.RateCategoryGrain, "Kathmandu", "Bagmati", 120, 160, 140, "kg"},
	{"Corn", "मकै", enums.RateCategoryGrain, "Kathmandu", "Bagmati", 35, 55, 45, "kg"},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "kisanbazaar-seed-market-rates",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	ctx := context.Background()

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "database init failed", err)
		os.Exit(1)
	}
	defer client.Close()

	// replace the whole reference table atomically
	err = client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.MarketRate{}).Error; err != nil {
			return err
		}

		var errs error
		for _, row := range seedRates {
			rate := models.MarketRate{
				ID:            uuid.New(),
				ProductName:   row.name,
				ProductNameNe: row.nameNe,
				Category:      row.category,
				District:      row.district,
				Province:      row.province,
				MinPrice:      decimal.NewFromFloat(row.min),
				MaxPrice:      decimal.NewFromFloat(row.max),
				AvgPrice:      decimal.NewFromFloat(row.avg),
				Unit:          row.unit,
			}
			if insertErr := tx.Create(&rate).Error; insertErr != nil {
				errs = multierr.Append(errs, insertErr)
			}
		}
		return errs
	})
	if err != nil {
		logg.Error(ctx, "seeding market rates failed", err)
		os.Exit(1)
	}

	logg.Info(logg.WithField(ctx, "rows", len(seedRates)), "market rates seeded")
}
