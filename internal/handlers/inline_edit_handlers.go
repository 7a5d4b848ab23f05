package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Inline edit endpoints. Each product row swaps between a display fragment
// and an edit-form fragment; field changes post back one field at a time so
// the warning set updates for that field only.

// CancelRow abandons a row's staged edit and re-renders the display
// fragment. Nothing is submitted.
func (h *Handlers) CancelRow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	product, ok := h.findProduct(id)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	h.Editors.For(id).Cancel()
	c.HTML(http.StatusOK, "product_row.html", h.buildRow(product))
}

// EditRow switches a row into edit mode, seeding the staged product from the
// displayed one, and renders the edit fragment. Other rows already in edit
// mode are left alone; every row owns its own staged state.
func (h *Handlers) EditRow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	product, ok := h.findProduct(id)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	h.Editors.For(id).StartEdit(product)
	c.HTML(http.StatusOK, "product_row.html", h.buildRow(product))
}

// StageField stages one field change and re-validates that field in
// isolation, then re-renders the row fragment so the input's warning state
// follows the evaluation.
func (h *Handlers) StageField(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	product, ok := h.findProduct(id)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	h.Editors.For(id).SetField(c.PostForm("field"), c.PostForm("value"))
	c.HTML(http.StatusOK, "product_row.html", h.buildRow(product))
}

// ConfirmRow submits the staged product. Outstanding warnings do not block
// the confirm; the row returns to display either way and a successful update
// invalidates the cached listing, so the redirect back to the list refetches.
func (h *Handlers) ConfirmRow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}
	// The confirm error stays on the editor and renders as the row's
	// warning tooltip after the redirect.
	_ = h.Editors.For(id).Confirm(h.apiCtx(c))
	c.Redirect(http.StatusSeeOther, "/products")
}
