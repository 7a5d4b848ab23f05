package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/beachstore-admin/internal/api"
	"github.com/01moynul/beachstore-admin/internal/obs"
	"github.com/01moynul/beachstore-admin/internal/validation"
)

// LoginForm is the sign-in input. Both fields are hard requirements here,
// unlike the advisory product validation: there is nothing sensible to send
// the API without them.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ShowLogin renders the sign-in form.
func (h *Handlers) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login exchanges the submitted credentials for a token and stores it as the
// auth cookie for the configured lifetime. Failures render inline on the
// form; success shows the dialog that links onward to the product list.
func (h *Handlers) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"FieldErrors": validation.FromBindError(err, &form),
			"Username":    form.Username,
		})
		return
	}

	token, err := h.API.Login(h.apiCtx(c), form.Username, form.Password)
	if err != nil {
		msg := "Something went wrong logging in"
		if errors.Is(err, api.ErrInvalidCredentials) {
			msg = "Invalid credentials"
		}
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error":    msg,
			"Username": form.Username,
		})
		return
	}

	maxAge := int(h.Cfg.CookieTTL.Seconds())
	c.SetCookie(h.Cfg.CookieName, token, maxAge, "/", "", false, true)
	obs.Logger.Info("login_success", "username", form.Username)

	c.HTML(http.StatusOK, "login.html", gin.H{"Success": true})
}
