package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/01moynul/beachstore-admin/internal/api"
	"github.com/01moynul/beachstore-admin/internal/cache"
	"github.com/01moynul/beachstore-admin/internal/models"
)

// ProductLister is the slice of the API client the pager needs.
type ProductLister interface {
	ListProducts(ctx context.Context, page int) (models.ProductPage, error)
}

// Pager drives cursor-based fetching of the product listing. Pages accumulate
// in order; the sentinel signal from the list view appends the next page when
// one exists and no fetch is in flight.
//
// The pager records the cache generation of "products" at fill time. When a
// mutation invalidates the listing, Ensure sees the newer generation and
// starts over from page one.
type Pager struct {
	client ProductLister
	cache  *cache.Cache

	mu        sync.Mutex
	pages     []models.ProductPage
	nextPage  *int
	loading   bool
	err       error
	primed    bool
	filledGen uint64
}

func NewPager(client ProductLister, c *cache.Cache) *Pager {
	return &Pager{client: client, cache: c}
}

// Ensure makes the first page available, refetching from scratch when the
// listing has been invalidated since the pager was last filled.
func (p *Pager) Ensure(ctx context.Context) error {
	gen := p.cache.Generation(cache.KeyProducts)
	p.mu.Lock()
	if p.primed && p.filledGen == gen && p.err == nil {
		p.mu.Unlock()
		return nil
	}
	p.pages = nil
	p.nextPage = nil
	p.primed = false
	p.err = nil
	p.filledGen = gen
	p.mu.Unlock()
	return p.FetchNext(ctx)
}

// FetchNext requests the next page and appends it. It is a no-op while a
// fetch is in flight or once the server has reported the last page.
func (p *Pager) FetchNext(ctx context.Context) error {
	p.mu.Lock()
	if p.loading || (p.primed && p.nextPage == nil) {
		p.mu.Unlock()
		return nil
	}
	page := 1
	if p.primed {
		page = *p.nextPage
	}
	p.loading = true
	p.mu.Unlock()

	seq := p.cache.Begin(cache.KeyProducts)
	result, err := p.client.ListProducts(ctx, page)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if err != nil {
		p.err = err
		return err
	}
	// A completion that lost the race against a fresher one is discarded.
	if !p.cache.Complete(cache.KeyProducts, seq, result) {
		return nil
	}
	p.err = nil
	p.primed = true
	p.pages = append(p.pages, result)
	p.nextPage = result.NextPage
	return nil
}

// SentinelVisible is the viewport-intersection signal: fetch the next page
// when one exists and nothing is in flight.
func (p *Pager) SentinelVisible(ctx context.Context) error {
	p.mu.Lock()
	if p.loading || !p.primed || p.nextPage == nil {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()
	return p.FetchNext(ctx)
}

// Pages returns the fetched pages in order.
func (p *Pager) Pages() []models.ProductPage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.ProductPage, len(p.pages))
	copy(out, p.pages)
	return out
}

// HasNext reports whether the server has announced another page.
func (p *Pager) HasNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nextPage != nil
}

// Loading reports whether a fetch is in flight.
func (p *Pager) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Err returns the error slot.
func (p *Pager) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// NeedsLogin reports whether the last failure was an unauthorized response,
// in which case the list view redirects to the login screen instead of
// rendering a table.
func (p *Pager) NeedsLogin() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Is(p.err, api.ErrUnauthorized)
}
