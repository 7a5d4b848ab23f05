package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/beachstore-admin/internal/cache"
	"github.com/01moynul/beachstore-admin/internal/models"
)

// ShowBrand renders the brand lookup card. Brands are read-only here, so the
// cached copy is reused until something invalidates it.
func (h *Handlers) ShowBrand(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "brand.html", gin.H{"InvalidID": true})
		return
	}

	key := cache.KeyBrand(id)
	if v, ok := h.Cache.Get(key); ok {
		if cached, ok := v.(models.OperationResult[models.Brand]); ok {
			c.HTML(http.StatusOK, "brand.html", gin.H{"Result": cached})
			return
		}
	}

	seq := h.Cache.Begin(key)
	result, err := h.API.GetBrand(h.apiCtx(c), id)
	if err != nil {
		c.HTML(http.StatusOK, "brand.html", gin.H{"Error": err.Error()})
		return
	}
	h.Cache.Complete(key, seq, result)
	c.HTML(http.StatusOK, "brand.html", gin.H{"Result": result})
}
