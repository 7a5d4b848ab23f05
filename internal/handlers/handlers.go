package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/beachstore-admin/internal/api"
	"github.com/01moynul/beachstore-admin/internal/cache"
	"github.com/01moynul/beachstore-admin/internal/catalog"
	"github.com/01moynul/beachstore-admin/internal/config"
	"github.com/01moynul/beachstore-admin/internal/middleware"
)

// Handlers holds the dependencies shared by every screen: the API client,
// the result cache and the catalog controllers.
type Handlers struct {
	Cfg     config.Config
	API     *api.Client
	Cache   *cache.Cache
	Pager   *catalog.Pager
	Editors *catalog.Editors
	Preview *catalog.ImagePreview
}

// New wires the controllers around the given client and cache.
func New(cfg config.Config, client *api.Client, c *cache.Cache) *Handlers {
	return &Handlers{
		Cfg:     cfg,
		API:     client,
		Cache:   c,
		Pager:   catalog.NewPager(client, c),
		Editors: catalog.NewEditors(client, c),
		Preview: catalog.NewImagePreview(cfg.PreviewDir, "/previews"),
	}
}

// ShowHome renders the landing page.
func (h *Handlers) ShowHome(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

// apiCtx returns the request context with the operator's auth token attached,
// so every outbound API call carries the credential cookie.
func (h *Handlers) apiCtx(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if token := c.GetString(middleware.CtxKeyToken); token != "" {
		ctx = api.WithToken(ctx, token)
	}
	return ctx
}
