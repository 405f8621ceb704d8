package catalog

import "strings"

// Visible applies the combined search and category constraints to the full
// collection and returns the passing subset in input order.
//
// A product passes when its category set is a superset of every required
// label (exact string match) and, if search text remains after trimming,
// the text appears case-insensitively in the title or description.
func Visible(products []*Product, requiredCategories []string, searchText string) []*Product {
	search := strings.ToLower(strings.TrimSpace(searchText))

	out := make([]*Product, 0, len(products))
	for _, p := range products {
		if !hasAllCategories(p, requiredCategories) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func hasAllCategories(p *Product, required []string) bool {
	for _, name := range required {
		if !p.HasCategory(name) {
			return false
		}
	}
	return true
}

func matchesSearch(p *Product, lowered string) bool {
	if strings.Contains(strings.ToLower(p.Title), lowered) {
		return true
	}
	if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), lowered) {
		return true
	}
	return false
}
