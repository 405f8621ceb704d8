package browser

import (
	"time"

	"vitrina/internal/catalog"
)

// View is the prepared view-model handed to the rendering target on every
// re-render: the filtered grid, the derived sections, the category facets
// and the current selection state. The target is expected to be a pure
// function of this value.
type View struct {
	Search             string                  `json:"search"`
	RequiredCategories []string                `json:"required_categories,omitempty"`
	Products           []*catalog.Product      `json:"products"`
	Sections           catalog.Sections        `json:"sections"`
	Categories         []catalog.CategoryCount `json:"categories"`
	Detail             *DetailView             `json:"detail,omitempty"`
	LoadError          string                  `json:"load_error,omitempty"`
	GeneratedAt        time.Time               `json:"generated_at"`
}

// DetailView is the single-item view with its gallery selection resolved.
type DetailView struct {
	Product      *catalog.Product `json:"product"`
	MediaIndex   int              `json:"media_index"`
	ActiveMedia  string           `json:"active_media,omitempty"`
	MediaIsVideo bool             `json:"media_is_video"`
	OnPromotion  bool             `json:"on_promotion"`
	SalePrice    *float64         `json:"sale_price,omitempty"`
}

// Target receives the view-model after each state change. Implementations
// hold no catalog logic of their own.
type Target interface {
	Render(View)
}

// TargetFunc adapts a plain function to the Target interface.
type TargetFunc func(View)

func (f TargetFunc) Render(v View) { f(v) }
