package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/beachstore-admin/internal/cache"
	"github.com/01moynul/beachstore-admin/internal/catalog"
	"github.com/01moynul/beachstore-admin/internal/models"
	"github.com/01moynul/beachstore-admin/internal/obs"
)

// rowVM is the per-row view model for the product table.
type rowVM struct {
	Product    models.Product
	Editing    bool
	Submitting bool
	Staged     models.Product
	Warnings   map[string]string
	Error      string
}

func warningsMap(ws []catalog.Warning) map[string]string {
	out := make(map[string]string, len(ws))
	for _, w := range ws {
		out[w.Field] = w.Message
	}
	return out
}

func (h *Handlers) buildRow(p models.Product) rowVM {
	e := h.Editors.For(p.ID)
	vm := rowVM{
		Product:    p,
		Editing:    e.State() == catalog.StateEditing,
		Submitting: e.State() == catalog.StateSubmitting,
		Staged:     e.Staged(),
		Warnings:   warningsMap(e.Warnings()),
	}
	if err := e.Err(); err != nil {
		vm.Error = err.Error()
	}
	return vm
}

func (h *Handlers) buildRows(pages []models.ProductPage) []rowVM {
	var rows []rowVM
	for _, page := range pages {
		for _, p := range page.Products {
			rows = append(rows, h.buildRow(p))
		}
	}
	return rows
}

// findProduct looks a product up in the fetched pages.
func (h *Handlers) findProduct(id int64) (models.Product, bool) {
	for _, page := range h.Pager.Pages() {
		for _, p := range page.Products {
			if p.ID == id {
				return p, true
			}
		}
	}
	return models.Product{}, false
}

// ListProducts renders the product table with everything fetched so far,
// refetching from page one when the listing was invalidated. An unauthorized
// first fetch redirects to the login screen instead of rendering a table.
func (h *Handlers) ListProducts(c *gin.Context) {
	err := h.Pager.Ensure(h.apiCtx(c))
	if h.Pager.NeedsLogin() {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	data := gin.H{
		"Rows":    h.buildRows(h.Pager.Pages()),
		"HasNext": h.Pager.HasNext(),
	}
	if q := c.Query("deleteError"); q != "" {
		data["DeleteError"] = q
	}
	status := http.StatusOK
	if err != nil {
		data["Error"] = err.Error()
		status = http.StatusBadGateway
	}
	c.HTML(status, "products.html", data)
}

// NextProducts is the sentinel endpoint: the observer script in the list page
// calls it when the sentinel row scrolls into view. It appends the next page
// and returns the new rows as a fragment; an empty body means nothing was
// fetched.
func (h *Handlers) NextProducts(c *gin.Context) {
	before := len(h.Pager.Pages())
	if err := h.Pager.SentinelVisible(h.apiCtx(c)); err != nil {
		c.String(http.StatusBadGateway, "")
		return
	}
	pages := h.Pager.Pages()
	if len(pages) == before {
		c.Status(http.StatusNoContent)
		return
	}
	c.Header("X-Has-Next", strconv.FormatBool(h.Pager.HasNext()))
	c.HTML(http.StatusOK, "product_rows.html", gin.H{
		"Rows": h.buildRows(pages[before:]),
	})
}

// ShowProduct renders the detail card: the product itself plus its images.
// Results land in the cache keyed per resource, so a revisit after an upload
// (which invalidates) refetches while an untouched revisit does not.
func (h *Handlers) ShowProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "product.html", gin.H{"InvalidID": true})
		return
	}
	ctx := h.apiCtx(c)

	product, err := h.fetchProduct(ctx, id)
	if err != nil {
		c.HTML(http.StatusOK, "product.html", gin.H{"Error": err.Error()})
		return
	}

	data := gin.H{"Result": product}
	if product.Data != nil {
		images, err := h.fetchImages(ctx, id)
		if err != nil {
			data["ImagesError"] = err.Error()
		} else {
			data["Images"] = images
			data["NoImages"] = images.StatusCode == http.StatusNoContent
		}
	}
	c.HTML(http.StatusOK, "product.html", data)
}

func (h *Handlers) fetchProduct(ctx context.Context, id int64) (models.OperationResult[models.Envelope[models.Product]], error) {
	key := cache.KeyProduct(id)
	if v, ok := h.Cache.Get(key); ok {
		if cached, ok := v.(models.OperationResult[models.Envelope[models.Product]]); ok {
			return cached, nil
		}
	}
	seq := h.Cache.Begin(key)
	result, err := h.API.GetProduct(ctx, id)
	if err != nil {
		return result, err
	}
	h.Cache.Complete(key, seq, result)
	return result, nil
}

func (h *Handlers) fetchImages(ctx context.Context, id int64) (models.OperationResult[models.Envelope[[]models.Image]], error) {
	key := cache.KeyImages(id)
	if v, ok := h.Cache.Get(key); ok {
		if cached, ok := v.(models.OperationResult[models.Envelope[[]models.Image]]); ok {
			return cached, nil
		}
	}
	seq := h.Cache.Begin(key)
	result, err := h.API.GetProductImages(ctx, id)
	if err != nil {
		return result, err
	}
	h.Cache.Complete(key, seq, result)
	return result, nil
}

// DeleteProduct removes a product and invalidates the listing. Errors travel
// back to the list screen as an inline message.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}
	if _, err := h.API.DeleteProduct(h.apiCtx(c), id); err != nil {
		c.Redirect(http.StatusSeeOther, "/products?deleteError="+url.QueryEscape(err.Error()))
		return
	}
	h.Cache.Invalidate(cache.KeyProducts)
	obs.Logger.Info("product_deleted", "product_id", id)
	c.Redirect(http.StatusSeeOther, "/products")
}

// ShowCreateProduct renders the create form, including the pending image
// preview if one is held.
func (h *Handlers) ShowCreateProduct(c *gin.Context) {
	data := gin.H{
		"Form":     map[string]string{},
		"Warnings": map[string]string{},
		"Type":     models.ProductTypePhysical,
	}
	if _, url, ok := h.Preview.Held(); ok {
		data["PreviewURL"] = url
	}
	c.HTML(http.StatusOK, "create.html", data)
}

// CreateProduct validates every field (advisory: warnings render but never
// block), submits the product, and on success chains the pending image
// upload with the freshly returned product id. The two outcomes surface
// independently; a failed upload does not undo the created product.
func (h *Handlers) CreateProduct(c *gin.Context) {
	fields := map[string]string{
		"name":            c.PostForm("name"),
		"sku":             c.PostForm("sku"),
		"price":           c.PostForm("price"),
		"weight":          c.PostForm("weight"),
		"inventory_level": c.PostForm("inventory_level"),
		"brand_name":      c.PostForm("brand_name"),
	}
	var warnings catalog.Warnings
	for field, value := range fields {
		catalog.ValidateField(&warnings, field, value)
	}

	productType := c.PostForm("type")
	if productType != models.ProductTypeDigital {
		productType = models.ProductTypePhysical
	}
	product := models.Product{
		Name:           fields["name"],
		SKU:            fields["sku"],
		Type:           productType,
		Price:          catalog.ParseNumber(fields["price"]),
		Weight:         catalog.ParseNumber(fields["weight"]),
		InventoryLevel: catalog.ParseNumber(fields["inventory_level"]),
		BrandName:      fields["brand_name"],
	}

	ctx := h.apiCtx(c)
	result, err := h.API.CreateProduct(ctx, product)
	if err != nil {
		data := gin.H{
			"Error":    err.Error(),
			"Warnings": warningsMap(warnings.All()),
			"Form":     fields,
			"Type":     productType,
		}
		if _, url, ok := h.Preview.Held(); ok {
			data["PreviewURL"] = url
		}
		c.HTML(http.StatusOK, "create.html", data)
		return
	}

	h.Cache.Invalidate(cache.KeyProducts)

	data := gin.H{
		"Created":  true,
		"Warnings": warningsMap(warnings.All()),
	}

	var newID int64
	if result.Data != nil {
		newID = result.Data.Data.ID
	}
	if _, _, held := h.Preview.Held(); held && newID != 0 {
		if err := h.uploadHeldImage(ctx, newID); err != nil {
			data["ImageError"] = err.Error()
		} else {
			data["ImageUploaded"] = true
		}
	}
	obs.Logger.Info("product_created", "product_id", newID, "name", product.Name)
	c.HTML(http.StatusOK, "create.html", data)
}

// uploadHeldImage hands the pending selection to the API and releases it
// whether or not the upload succeeded; the selection only lives until an
// upload attempt completes.
func (h *Handlers) uploadHeldImage(ctx context.Context, productID int64) error {
	filename, file, err := h.Preview.Open()
	if err != nil {
		return err
	}
	defer file.Close()
	defer h.Preview.Release()

	if _, err := h.API.UploadProductImage(ctx, productID, filename, file); err != nil {
		return err
	}
	h.Cache.Invalidate(cache.KeyProducts, cache.KeyImages(productID))
	return nil
}
