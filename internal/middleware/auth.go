package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/beachstore-admin/internal/auth"
)

// CtxKeyToken is the gin context key the auth token is stored under once the
// guard has let a request through.
const CtxKeyToken = "authToken"

// RequireAuth guards the admin screens. A request without the auth cookie,
// or with a JWT whose expiry has passed, is redirected to the login screen.
// The token itself is not verified here; the catalog API rejects forged
// tokens with a 401 and the list view handles that redirect as well.
func RequireAuth(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		if auth.IsExpired(token, time.Now()) {
			// Drop the dead cookie so the next request goes straight to
			// the login form.
			c.SetCookie(cookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(CtxKeyToken, token)
		c.Next()
	}
}
