package enums

import "fmt"

// RateCategory groups market-rate reference rows.
type RateCategory string

const (
	RateCategoryVegetable RateCategory = "vegetable"
	RateCategoryFruit     RateCategory = "fruit"
	RateCategoryGrain     RateCategory = "grain"
)

var validRateCategories = []RateCategory{
	RateCategoryVegetable,
	RateCategoryFruit,
	RateCategoryGrain,
}

// String implements fmt.Stringer.
func (r RateCategory) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RateCategory.
func (r RateCategory) IsValid() bool {
	for _, candidate := range validRateCategories {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRateCategory converts raw input into a RateCategory.
func ParseRateCategory(value string) (RateCategory, error) {
	for _, candidate := range validRateCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid rate category %q", value)
}
