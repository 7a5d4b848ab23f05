package cache

import "testing"

func TestCompleteStoresValue(t *testing.T) {
	c := New()
	seq := c.Begin(KeyProducts)
	if !c.Complete(KeyProducts, seq, "page-1") {
		t.Fatal("Complete returned false for a fresh sequence")
	}
	v, ok := c.Get(KeyProducts)
	if !ok || v != "page-1" {
		t.Fatalf("Get = %v, %v", v, ok)
	}
}

func TestStaleCompletionIsDiscarded(t *testing.T) {
	c := New()
	old := c.Begin(KeyProducts)
	fresh := c.Begin(KeyProducts)

	if !c.Complete(KeyProducts, fresh, "fresh") {
		t.Fatal("fresh completion rejected")
	}
	// The slow older response arrives after the newer one landed.
	if c.Complete(KeyProducts, old, "stale") {
		t.Fatal("stale completion was applied")
	}
	v, _ := c.Get(KeyProducts)
	if v != "fresh" {
		t.Fatalf("Get = %v, want fresh", v)
	}
}

func TestSequencesAreIndependentPerKey(t *testing.T) {
	c := New()
	c.Begin(KeyProducts)
	seq := c.Begin(KeyProduct(1))
	if seq != 1 {
		t.Fatalf("first sequence for product key = %d, want 1", seq)
	}
}

func TestInvalidateDropsEntryAndBumpsGeneration(t *testing.T) {
	c := New()
	seq := c.Begin(KeyProducts)
	c.Complete(KeyProducts, seq, "page-1")
	gen := c.Generation(KeyProducts)

	c.Invalidate(KeyProducts, KeyImages(2))

	if _, ok := c.Get(KeyProducts); ok {
		t.Error("entry survived invalidation")
	}
	if c.Generation(KeyProducts) != gen+1 {
		t.Errorf("generation = %d, want %d", c.Generation(KeyProducts), gen+1)
	}
	if c.Generation(KeyImages(2)) != 1 {
		t.Errorf("images generation = %d, want 1", c.Generation(KeyImages(2)))
	}
}

func TestCompletionAfterInvalidationStillApplies(t *testing.T) {
	c := New()
	seq := c.Begin(KeyProducts)
	c.Invalidate(KeyProducts)
	if !c.Complete(KeyProducts, seq, "late") {
		t.Fatal("completion after invalidation rejected")
	}
	if v, _ := c.Get(KeyProducts); v != "late" {
		t.Fatalf("Get = %v, want late", v)
	}
}

func TestKeyHelpers(t *testing.T) {
	if got := KeyProduct(12); got != "product:12" {
		t.Errorf("KeyProduct = %q", got)
	}
	if got := KeyImages(12); got != "images:12" {
		t.Errorf("KeyImages = %q", got)
	}
	if got := KeyBrand(3); got != "brand:3" {
		t.Errorf("KeyBrand = %q", got)
	}
}
