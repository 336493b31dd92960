package middleware

import (
	"roastery/internal/session"

	"github.com/gin-gonic/gin"
)

const CurrentUserKey = "CurrentUser"

// InjectUser copies the session snapshot into the gin context so
// handlers and the render helper do not have to hit the store again.
func InjectUser(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := store.Get(c); ok {
			c.Set(CurrentUserKey, user)
		}
		c.Next()
	}
}

// UserFrom returns the injected session user, if any.
func UserFrom(c *gin.Context) (session.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return session.User{}, false
	}
	user, ok := v.(session.User)
	return user, ok
}
