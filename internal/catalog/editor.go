package catalog

import (
	"context"
	"sync"

	"github.com/01moynul/beachstore-admin/internal/cache"
	"github.com/01moynul/beachstore-admin/internal/models"
)

// ProductUpdater is the slice of the API client the editor needs.
type ProductUpdater interface {
	UpdateProduct(ctx context.Context, id int64, product models.Product) (models.OperationResult[models.Envelope[models.Product]], error)
}

// EditorState is the per-row edit state.
type EditorState int

const (
	// StateDisplay shows the stored product.
	StateDisplay EditorState = iota
	// StateEditing stages field changes locally.
	StateEditing
	// StateSubmitting is the transient state while the staged product is on
	// the wire.
	StateSubmitting
)

// RowEditor is the inline edit controller of one product row. Edits are
// staged locally and validated field by field; confirming submits the staged
// product whether or not warnings are active (validation is advisory in edit
// mode) and drops back to display either way.
type RowEditor struct {
	updater ProductUpdater
	cache   *cache.Cache

	mu        sync.Mutex
	state     EditorState
	productID int64
	staged    models.Product
	warnings  Warnings
	lastErr   error
}

func NewRowEditor(updater ProductUpdater, c *cache.Cache) *RowEditor {
	return &RowEditor{updater: updater, cache: c}
}

// StartEdit switches the row into edit mode, seeding the staged product from
// the currently displayed one.
func (e *RowEditor) StartEdit(product models.Product) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateEditing
	e.productID = product.ID
	e.staged = product
	e.warnings = Warnings{}
	e.lastErr = nil
}

// SetField stages a new raw value for one field and re-validates that field
// in isolation. Unknown fields are ignored.
func (e *RowEditor) SetField(field, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateEditing {
		return
	}
	ValidateField(&e.warnings, field, value)
	switch field {
	case "name":
		e.staged.Name = value
	case "sku":
		e.staged.SKU = value
	case "price":
		e.staged.Price = ParseNumber(value)
	case "weight":
		e.staged.Weight = ParseNumber(value)
	case "inventory_level":
		e.staged.InventoryLevel = ParseNumber(value)
	case "brand_name":
		e.staged.BrandName = value
	case "type":
		if value == models.ProductTypePhysical || value == models.ProductTypeDigital {
			e.staged.Type = value
		}
	}
}

// Cancel abandons the staged edit and returns the row to display. Nothing is
// submitted and the displayed product is untouched.
func (e *RowEditor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateEditing {
		return
	}
	e.state = StateDisplay
	e.productID = 0
	e.staged = models.Product{}
	e.warnings = Warnings{}
}

// Confirm submits the staged product. Outstanding warnings do not block the
// submission. On completion, successful or not, the row returns to display
// and the edit-target identity is cleared; a successful update invalidates
// the cached listing so the table refetches.
func (e *RowEditor) Confirm(ctx context.Context) error {
	e.mu.Lock()
	if e.state != StateEditing {
		e.mu.Unlock()
		return nil
	}
	e.state = StateSubmitting
	id := e.productID
	staged := e.staged
	e.mu.Unlock()

	_, err := e.updater.UpdateProduct(ctx, id, staged)

	e.mu.Lock()
	e.state = StateDisplay
	e.productID = 0
	e.lastErr = err
	e.mu.Unlock()

	if err == nil {
		e.cache.Invalidate(cache.KeyProducts)
	}
	return err
}

// State returns the current edit state.
func (e *RowEditor) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Staged returns the staged product.
func (e *RowEditor) Staged() models.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.staged
}

// Warnings returns the active field warnings.
func (e *RowEditor) Warnings() []Warning {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.warnings.All()
}

// Err returns the error of the last confirm, if any. It is rendered as the
// row's warning tooltip.
func (e *RowEditor) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Editors hands out one RowEditor per product row. Nothing stops several rows
// from being in edit mode at once; each row owns independent staged state.
type Editors struct {
	updater ProductUpdater
	cache   *cache.Cache

	mu sync.Mutex
	m  map[int64]*RowEditor
}

func NewEditors(updater ProductUpdater, c *cache.Cache) *Editors {
	return &Editors{updater: updater, cache: c, m: make(map[int64]*RowEditor)}
}

// For returns the editor of the given product row, creating it on first use.
func (s *Editors) For(id int64) *RowEditor {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[id]
	if !ok {
		e = NewRowEditor(s.updater, s.cache)
		s.m[id] = e
	}
	return e
}
