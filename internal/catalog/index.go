package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Index owns the authoritative in-memory product collection together with
// the derived category-count index. All mutation goes through Load, which
// serializes behind a single writer so readers never observe a partially
// swapped collection.
type Index struct {
	mu       sync.RWMutex
	products []*Product
	byID     map[string]*Product
	counts   []CategoryCount

	validate *validator.Validate
}

func NewIndex() *Index {
	return &Index{
		byID:     make(map[string]*Product),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load replaces the collection atomically. Every record is validated before
// the swap; on any failure the prior collection stays in place and the
// error is returned for display.
func (ix *Index) Load(records []*Product) error {
	byID := make(map[string]*Product, len(records))
	for i, p := range records {
		if p == nil {
			return fmt.Errorf("validate record %d: record is nil", i)
		}
		if err := ix.validate.Struct(p); err != nil {
			return fmt.Errorf("validate record %q: %w", p.ID, err)
		}
		if _, dup := byID[p.ID]; dup {
			return fmt.Errorf("validate record %q: duplicate id", p.ID)
		}
		byID[p.ID] = p
	}

	counts := buildCategoryCounts(records)

	ix.mu.Lock()
	ix.products = records
	ix.byID = byID
	ix.counts = counts
	ix.mu.Unlock()

	return nil
}

// All returns the current collection in load order.
func (ix *Index) All() []*Product {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.products
}

func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.products)
}

// Get looks a product up by id, nil when absent.
func (ix *Index) Get(id string) *Product {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.byID[id]
}

// CategoryCounts returns the cached category index: one {name, count} per
// label, sorted by count descending with ties kept in first-seen order.
func (ix *Index) CategoryCounts() []CategoryCount {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	out := make([]CategoryCount, len(ix.counts))
	copy(out, ix.counts)
	return out
}

// CategoryCountsMatching narrows the cached index to labels containing the
// substring, case-insensitively. It never re-scans products.
func (ix *Index) CategoryCountsMatching(substr string) []CategoryCount {
	needle := strings.ToLower(strings.TrimSpace(substr))
	if needle == "" {
		return ix.CategoryCounts()
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var out []CategoryCount
	for _, cc := range ix.counts {
		if strings.Contains(strings.ToLower(cc.Name), needle) {
			out = append(out, cc)
		}
	}
	return out
}

func buildCategoryCounts(products []*Product) []CategoryCount {
	totals := make(map[string]int)
	var order []string
	for _, p := range products {
		for _, name := range p.Categories {
			if _, seen := totals[name]; !seen {
				order = append(order, name)
			}
			totals[name]++
		}
	}

	counts := make([]CategoryCount, 0, len(order))
	for _, name := range order {
		counts = append(counts, CategoryCount{Name: name, Count: totals[name]})
	}
	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
