package middleware

import (
	"net/http"

	"roastery/internal/models"
	"roastery/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireAuth redirects to the login form when no session user exists.
// A 302 rather than a 401: this is a browser UI, not an API.
func RequireAuth(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := store.Get(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole first applies the auth check, then role membership.
// An authenticated user with the wrong role gets a terminal 403,
// never a redirect.
func RequireRole(store session.Store, roles ...models.Role) gin.HandlerFunc {
	roleSet := map[models.Role]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := store.Get(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if _, ok := roleSet[user.Role]; !ok {
			c.String(http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequirePermission gates on the capability map instead of an explicit
// role list, keeping role→permission knowledge in one place.
func RequirePermission(store session.Store, perm models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := store.Get(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if !user.Role.Can(perm) {
			c.String(http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
