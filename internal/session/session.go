// Package session hides the cookie-session machinery behind a small
// store interface so handlers and middleware can be wired against an
// abstraction instead of the framework's globals.
package session

import (
	"roastery/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// User is the snapshot kept in the session for the lifetime of a login.
// Role and label are captured at login and not re-read per request.
type User struct {
	ID       uint
	Username string
	Role     models.Role
	Label    string
}

type Store interface {
	Get(c *gin.Context) (User, bool)
	Set(c *gin.Context, u User) error
	Destroy(c *gin.Context) error
}

const (
	keyUserID   = "user_id"
	keyUsername = "username"
	keyRole     = "role"
	keyLabel    = "label"
)

// cookieStore reads and writes the gin-contrib cookie session that the
// router installs. Values are stored flat because the cookie codec only
// handles gob-friendly primitives.
type cookieStore struct{}

func NewCookieStore() Store {
	return cookieStore{}
}

func (cookieStore) Get(c *gin.Context) (User, bool) {
	sess := sessions.Default(c)

	id, ok := sess.Get(keyUserID).(uint)
	if !ok || id == 0 {
		return User{}, false
	}

	username, _ := sess.Get(keyUsername).(string)
	roleStr, _ := sess.Get(keyRole).(string)
	label, _ := sess.Get(keyLabel).(string)

	role := models.Role(roleStr)
	if !role.Valid() {
		return User{}, false
	}

	return User{ID: id, Username: username, Role: role, Label: label}, true
}

func (cookieStore) Set(c *gin.Context, u User) error {
	sess := sessions.Default(c)
	sess.Set(keyUserID, u.ID)
	sess.Set(keyUsername, u.Username)
	sess.Set(keyRole, string(u.Role))
	sess.Set(keyLabel, u.Label)
	return sess.Save()
}

func (cookieStore) Destroy(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}
