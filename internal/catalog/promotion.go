package catalog

import "time"

// IsOnPromotion reports whether the product's discount is active at the
// given instant. A promotion needs a discount in (0,100] and an end date;
// a missing start date means the window has no lower bound.
func IsOnPromotion(p *Product, now time.Time) bool {
	if p == nil || p.DiscountPercent == nil {
		return false
	}
	d := *p.DiscountPercent
	if d <= 0 || d > 100 {
		return false
	}
	if p.PromotionEnd == nil {
		return false
	}
	if p.PromotionStart != nil && now.Before(*p.PromotionStart) {
		return false
	}
	return !now.After(*p.PromotionEnd)
}

// SalePrice returns the discounted price when the promotion is active and
// the product has a price, nil otherwise.
func SalePrice(p *Product, now time.Time) *float64 {
	if !IsOnPromotion(p, now) || p.Price == nil {
		return nil
	}
	sale := *p.Price * (1 - float64(*p.DiscountPercent)/100)
	return &sale
}
