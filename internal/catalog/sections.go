package catalog

import (
	"sort"
	"time"
)

const (
	// RecentWindow bounds how old a product may be to count as recent.
	RecentWindow = 7 * 24 * time.Hour
	// RecentLimit caps the recent section.
	RecentLimit = 8
)

// Sections are the three named subsets shown outside the filtered grid.
// A nil slice means the section is suppressed, not rendered empty.
type Sections struct {
	Recent     []*Product `json:"recent,omitempty"`
	Featured   []*Product `json:"featured,omitempty"`
	Promotions []*Product `json:"promotions,omitempty"`
}

// BuildSections derives all three sections from the full collection.
// They never depend on the current search or category filter state.
func BuildSections(products []*Product, now time.Time) Sections {
	return Sections{
		Recent:     RecentProducts(products, now),
		Featured:   FeaturedProducts(products),
		Promotions: PromotionProducts(products, now),
	}
}

// RecentProducts returns products created within the recent window, newest
// first, capped at RecentLimit. Returns nil when none qualify.
func RecentProducts(products []*Product, now time.Time) []*Product {
	cutoff := now.Add(-RecentWindow)

	var recent []*Product
	for _, p := range products {
		if !p.CreatedAt.Before(cutoff) && !p.CreatedAt.After(now) {
			recent = append(recent, p)
		}
	}
	if len(recent) == 0 {
		return nil
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	return recent
}

// FeaturedProducts returns flagged products in input order, nil when none.
func FeaturedProducts(products []*Product) []*Product {
	var featured []*Product
	for _, p := range products {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}
	return featured
}

// PromotionProducts returns products with an active discount, nil when none.
func PromotionProducts(products []*Product, now time.Time) []*Product {
	var onSale []*Product
	for _, p := range products {
		if IsOnPromotion(p, now) {
			onSale = append(onSale, p)
		}
	}
	return onSale
}
