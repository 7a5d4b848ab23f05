package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/01moynul/beachstore-admin/internal/handlers"
	"github.com/01moynul/beachstore-admin/internal/middleware"
	"github.com/01moynul/beachstore-admin/web"
)

// SetupRouter assembles the console's routes around the handler set.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogging())
	router.SetHTMLTemplate(web.Templates())

	// --- Public Routes ---
	router.GET("/", h.ShowHome)
	router.GET("/login", h.ShowLogin)
	router.POST("/login", h.Login)

	// --- Admin Screens (Login Required) ---
	authed := router.Group("/")
	authed.Use(middleware.RequireAuth(h.Cfg.CookieName))
	{
		authed.GET("/products", h.ListProducts)
		authed.GET("/products/next", h.NextProducts)

		// Create flow, before the :id routes so "create" never parses
		// as a product id.
		authed.GET("/products/create", h.ShowCreateProduct)
		authed.POST("/products/create", h.CreateProduct)
		authed.POST("/products/create/image", h.SelectImage)

		authed.GET("/products/:id", h.ShowProduct)
		authed.POST("/products/:id/delete", h.DeleteProduct)

		// Inline edit fragments.
		authed.GET("/products/:id/row/edit", h.EditRow)
		authed.POST("/products/:id/row/field", h.StageField)
		authed.POST("/products/:id/row/confirm", h.ConfirmRow)
		authed.POST("/products/:id/row/cancel", h.CancelRow)

		authed.GET("/brands/:id", h.ShowBrand)

		// Locally staged image previews.
		authed.Static("/previews", h.Cfg.PreviewDir)
	}

	return router
}
