package browser

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"vitrina/internal/catalog"
	"vitrina/internal/source"
)

const incrementTimeout = 5 * time.Second

// Browser is the controller for one browsing session. It owns the catalog
// index, the search/category filter state and the detail-view state
// machine, and assembles the view-model after every state change. All
// mutation is serialized behind one mutex so the category index never
// observes a partially updated collection.
type Browser struct {
	src      source.Source
	logger   *zap.SugaredLogger
	target   Target
	clock    func() time.Time
	debounce *Debouncer

	mu       sync.Mutex
	index    *catalog.Index
	detail   DetailState
	search   string
	required []string
	loadErr  error

	incrementFailures atomic.Int64
}

// Deps carries the collaborators a Browser needs. Source and Logger are
// required; Clock defaults to time.Now and SettleDelay to the standard
// search debounce.
type Deps struct {
	Source      source.Source
	Logger      *zap.SugaredLogger
	Target      Target
	Clock       func() time.Time
	SettleDelay time.Duration
}

func New(deps Deps) (*Browser, error) {
	if deps.Source == nil {
		return nil, errors.New("browser: source is required")
	}
	if deps.Logger == nil {
		return nil, errors.New("browser: logger is required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Browser{
		src:      deps.Source,
		logger:   deps.Logger,
		target:   deps.Target,
		clock:    clock,
		debounce: NewDebouncer(deps.SettleDelay),
		index:    catalog.NewIndex(),
	}, nil
}

// Reload fetches the full collection and swaps it in. On any failure the
// prior collection (or the empty one, on first load) stays authoritative
// and the error is kept for display until the next successful load.
func (b *Browser) Reload(ctx context.Context) error {
	records, err := b.src.FetchAll(ctx)

	b.mu.Lock()
	if err == nil {
		err = b.index.Load(records)
	}
	b.loadErr = err
	if err == nil && b.detail.IsOpen() && b.index.Get(b.detail.OpenID()) == nil {
		// The open product disappeared from the new collection.
		b.detail.Close()
	}
	b.mu.Unlock()

	if err != nil {
		b.logger.Errorw("catalog load failed", "error", err)
	}
	b.render()
	return err
}

// SetSearch records new search text. The change settles through the
// debouncer, so rapid keystrokes collapse into a single re-filter.
func (b *Browser) SetSearch(text string) {
	b.debounce.Schedule(func() {
		b.mu.Lock()
		b.search = text
		b.mu.Unlock()
		b.render()
	})
}

// ToggleCategory flips one required category. Not debounced; the reflow
// is O(n) over the in-memory collection.
func (b *Browser) ToggleCategory(name string) {
	b.mu.Lock()
	found := false
	next := b.required[:0]
	for _, c := range b.required {
		if c == name {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		next = append(next, name)
	}
	b.required = next
	b.mu.Unlock()
	b.render()
}

// OpenDetail opens the detail view for a product. Unknown ids are a
// silent no-op. A successful open dispatches exactly one best-effort
// popularity increment that never blocks or rolls back the transition.
func (b *Browser) OpenDetail(productID string) {
	b.mu.Lock()
	if b.index.Get(productID) == nil {
		b.mu.Unlock()
		return
	}
	b.detail.Open(productID)
	b.mu.Unlock()

	go b.incrementPopularity(productID)
	b.render()
}

// SelectMedia switches the active gallery item of the open detail view.
func (b *Browser) SelectMedia(index int) {
	b.mu.Lock()
	mediaCount := 0
	if b.detail.IsOpen() {
		if p := b.index.Get(b.detail.OpenID()); p != nil {
			mediaCount = len(p.Media)
		}
	}
	b.detail.SelectMedia(index, mediaCount)
	b.mu.Unlock()
	b.render()
}

// CloseDetail closes the detail view. Idempotent.
func (b *Browser) CloseDetail() {
	b.mu.Lock()
	b.detail.Close()
	b.mu.Unlock()
	b.render()
}

// View assembles the current view-model. categoryFilter narrows the
// category facet list by case-insensitive substring; it reuses the cached
// index and never re-scans products.
func (b *Browser) View(categoryFilter string) View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.viewLocked(categoryFilter)
}

func (b *Browser) viewLocked(categoryFilter string) View {
	now := b.clock()
	products := b.index.All()

	v := View{
		Search:             b.search,
		RequiredCategories: append([]string(nil), b.required...),
		Products:           catalog.Visible(products, b.required, b.search),
		Sections:           catalog.BuildSections(products, now),
		Categories:         b.index.CategoryCountsMatching(categoryFilter),
		GeneratedAt:        now,
	}
	if b.loadErr != nil {
		v.LoadError = b.loadErr.Error()
	}

	if b.detail.IsOpen() {
		// Weak reference: resolved afresh on every render.
		if p := b.index.Get(b.detail.OpenID()); p != nil {
			d := &DetailView{
				Product:     p,
				MediaIndex:  b.detail.MediaIndex(),
				OnPromotion: catalog.IsOnPromotion(p, now),
				SalePrice:   catalog.SalePrice(p, now),
			}
			if d.MediaIndex < len(p.Media) {
				d.ActiveMedia = p.Media[d.MediaIndex]
				d.MediaIsVideo = catalog.IsVideoURL(d.ActiveMedia)
			}
			v.Detail = d
		}
	}
	return v
}

// IncrementFailures reports how many popularity increments were dropped.
func (b *Browser) IncrementFailures() int64 {
	return b.incrementFailures.Load()
}

// Stop cancels any pending debounced action. The browser stays usable.
func (b *Browser) Stop() {
	b.debounce.Stop()
}

func (b *Browser) incrementPopularity(productID string) {
	ctx, cancel := context.WithTimeout(context.Background(), incrementTimeout)
	defer cancel()

	if err := b.src.IncrementPopularity(ctx, productID); err != nil {
		b.incrementFailures.Add(1)
		b.logger.Warnw("popularity increment dropped", "product_id", productID, "error", err)
	}
}

func (b *Browser) render() {
	if b.target == nil {
		return
	}
	b.mu.Lock()
	v := b.viewLocked("")
	b.mu.Unlock()
	b.target.Render(v)
}
