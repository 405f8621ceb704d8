package catalog

import (
	"strings"
	"time"
)

// Product is one catalog entry as delivered by the data source. The core
// treats it as immutable; only the popularity counter ever changes, and
// that happens source-side.
type Product struct {
	ID              string     `json:"id" validate:"required"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	Price           *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	Media           []string   `json:"media,omitempty"`
	Categories      []string   `json:"categories,omitempty"`
	IsFeatured      bool       `json:"is_featured"`
	AdminNote       *string    `json:"admin_note,omitempty"`
	DiscountPercent *int       `json:"discount_percent,omitempty" validate:"omitempty,gte=0,lte=100"`
	PromotionStart  *time.Time `json:"promotion_start,omitempty"`
	PromotionEnd    *time.Time `json:"promotion_end,omitempty"`
	CreatedAt       time.Time  `json:"created_at" validate:"required"`
	PopularityCount *int64     `json:"popularity_count,omitempty" validate:"omitempty,gte=0"`
}

// DisplayTitle degrades gracefully when the source delivered an empty title.
func (p *Product) DisplayTitle() string {
	if strings.TrimSpace(p.Title) == "" {
		return "Untitled product"
	}
	return p.Title
}

// HasCategory reports whether the product carries the exact label.
func (p *Product) HasCategory(name string) bool {
	for _, c := range p.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// CategoryCount is one entry of the derived category index.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

var videoExtensions = []string{".mp4", ".webm", ".mov"}

// IsVideoURL classifies a media URI by extension or path convention.
// Anything not recognized as video is treated as an image.
func IsVideoURL(uri string) bool {
	trimmed := uri
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	lower := strings.ToLower(trimmed)
	for _, ext := range videoExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return strings.Contains(lower, "/video/")
}
