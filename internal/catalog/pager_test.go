package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/01moynul/beachstore-admin/internal/api"
	"github.com/01moynul/beachstore-admin/internal/cache"
	"github.com/01moynul/beachstore-admin/internal/models"
)

// fakeLister serves a fixed set of pages keyed by page number.
type fakeLister struct {
	pages map[int]models.ProductPage
	calls []int
	err   error
}

func (f *fakeLister) ListProducts(ctx context.Context, page int) (models.ProductPage, error) {
	f.calls = append(f.calls, page)
	if f.err != nil {
		return models.ProductPage{}, f.err
	}
	return f.pages[page], nil
}

func intPtr(n int) *int { return &n }

func threePageLister() *fakeLister {
	return &fakeLister{pages: map[int]models.ProductPage{
		1: {Products: []models.Product{{ID: 1}}, CurrentPage: 1, NextPage: intPtr(2)},
		2: {Products: []models.Product{{ID: 2}}, CurrentPage: 2, NextPage: intPtr(3)},
		3: {Products: []models.Product{{ID: 3}}, CurrentPage: 3},
	}}
}

func TestEnsureFetchesFirstPageOnce(t *testing.T) {
	lister := threePageLister()
	p := NewPager(lister, cache.New())

	if err := p.Ensure(context.Background()); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if err := p.Ensure(context.Background()); err != nil {
		t.Fatalf("Ensure again: %v", err)
	}
	if len(lister.calls) != 1 || lister.calls[0] != 1 {
		t.Fatalf("calls = %v, want exactly [1]", lister.calls)
	}
	if got := p.Pages(); len(got) != 1 || got[0].Products[0].ID != 1 {
		t.Fatalf("pages = %+v", got)
	}
	if !p.HasNext() {
		t.Error("HasNext = false after page one of three")
	}
}

func TestSentinelAppendsUntilExhausted(t *testing.T) {
	lister := threePageLister()
	p := NewPager(lister, cache.New())
	ctx := context.Background()

	if err := p.Ensure(ctx); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if err := p.SentinelVisible(ctx); err != nil {
		t.Fatalf("SentinelVisible: %v", err)
	}
	if err := p.SentinelVisible(ctx); err != nil {
		t.Fatalf("SentinelVisible: %v", err)
	}
	if got := len(p.Pages()); got != 3 {
		t.Fatalf("pages = %d, want 3", got)
	}
	if p.HasNext() {
		t.Error("HasNext = true after the last page")
	}

	// Exhausted: further signals are no-ops.
	if err := p.SentinelVisible(ctx); err != nil {
		t.Fatalf("SentinelVisible: %v", err)
	}
	if len(lister.calls) != 3 {
		t.Fatalf("calls = %v, want three fetches", lister.calls)
	}
}

func TestSentinelBeforeEnsureIsNoOp(t *testing.T) {
	lister := threePageLister()
	p := NewPager(lister, cache.New())

	if err := p.SentinelVisible(context.Background()); err != nil {
		t.Fatalf("SentinelVisible: %v", err)
	}
	if len(lister.calls) != 0 {
		t.Fatalf("calls = %v, want none before priming", lister.calls)
	}
}

func TestInvalidationRestartsFromPageOne(t *testing.T) {
	lister := threePageLister()
	c := cache.New()
	p := NewPager(lister, c)
	ctx := context.Background()

	if err := p.Ensure(ctx); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if err := p.SentinelVisible(ctx); err != nil {
		t.Fatalf("SentinelVisible: %v", err)
	}

	c.Invalidate(cache.KeyProducts)

	if err := p.Ensure(ctx); err != nil {
		t.Fatalf("Ensure after invalidation: %v", err)
	}
	if got := p.Pages(); len(got) != 1 || got[0].CurrentPage != 1 {
		t.Fatalf("pages = %+v, want a fresh page one", got)
	}
}

func TestNeedsLoginOnUnauthorized(t *testing.T) {
	lister := &fakeLister{err: api.ErrUnauthorized}
	p := NewPager(lister, cache.New())

	if err := p.Ensure(context.Background()); !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if !p.NeedsLogin() {
		t.Error("NeedsLogin = false")
	}
}

func TestOtherErrorsDoNotNeedLogin(t *testing.T) {
	lister := &fakeLister{err: errors.New("boom")}
	p := NewPager(lister, cache.New())

	if err := p.Ensure(context.Background()); err == nil {
		t.Fatal("Ensure succeeded, want error")
	}
	if p.NeedsLogin() {
		t.Error("NeedsLogin = true for a non-auth error")
	}
	if p.Err() == nil {
		t.Error("Err = nil")
	}
}

func TestEnsureRetriesAfterError(t *testing.T) {
	lister := threePageLister()
	lister.err = errors.New("transient")
	p := NewPager(lister, cache.New())
	ctx := context.Background()

	if err := p.Ensure(ctx); err == nil {
		t.Fatal("Ensure succeeded, want error")
	}
	lister.err = nil
	if err := p.Ensure(ctx); err != nil {
		t.Fatalf("Ensure after recovery: %v", err)
	}
	if got := len(p.Pages()); got != 1 {
		t.Fatalf("pages = %d, want 1", got)
	}
}
