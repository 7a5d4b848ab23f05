package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/beachstore-admin/internal/models"
	"github.com/01moynul/beachstore-admin/internal/obs"
)

// SelectImage handles the file picker on the create screen. The chosen file
// is staged as the single pending selection, replacing (and removing) any
// previous one, and the form re-renders with the local preview.
func (h *Handlers) SelectImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		h.renderSelectError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	src, err := file.Open()
	if err != nil {
		h.renderSelectError(c, http.StatusInternalServerError, "Failed to read file")
		return
	}
	defer src.Close()

	url, err := h.Preview.Select(file.Filename, src)
	if err != nil {
		h.renderSelectError(c, http.StatusInternalServerError, "Failed to stage file")
		return
	}
	obs.Logger.Info("image_selected", "filename", file.Filename, "preview", url)
	c.Redirect(http.StatusSeeOther, "/products/create")
}

func (h *Handlers) renderSelectError(c *gin.Context, status int, msg string) {
	data := gin.H{
		"ImageError": msg,
		"Form":       map[string]string{},
		"Warnings":   map[string]string{},
		"Type":       models.ProductTypePhysical,
	}
	if _, url, ok := h.Preview.Held(); ok {
		data["PreviewURL"] = url
	}
	c.HTML(status, "create.html", data)
}
