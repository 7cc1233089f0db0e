package service

import "fsanano/train-booking/internal/model"

// FinalPrice is the base price reduced by the discount percentage.
func FinalPrice(basePrice, discountPercentage float64) float64 {
	return basePrice * (1 - discountPercentage/100)
}

func trainPrice(t *model.Train) float64 {
	return FinalPrice(t.BasePrice, t.DiscountPercentage)
}
