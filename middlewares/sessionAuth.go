package middlewares

import (
	"github.com/gin-gonic/gin"

	"MediBuddy/models"
	"MediBuddy/services"
	"MediBuddy/utils"
)

const sessionContextKey = "session"

// SessionAuthMiddleware resolves the session token (cookie, with a query
// parameter fallback for non-browser clients) into the persisted session
// and attaches it to the request. It never rejects: an unresolvable
// token simply means no session, and the authorization gate decides what
// that implies for the route.
func SessionAuthMiddleware(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookieName)
		if err != nil || token == "" {
			token = c.DefaultQuery("sessionToken", "")
		}
		if token != "" {
			sess, err := sessions.Restore(c.Request.Context(), token)
			if err == nil && sess != nil {
				c.Set(sessionContextKey, sess)
			}
		}
		c.Next()
	}
}

// CurrentSession retrieves the session attached by SessionAuthMiddleware.
func CurrentSession(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*models.Session)
	return sess, ok
}

// CurrentUser is a convenience for handlers running behind the gate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	sess, ok := CurrentSession(c)
	if !ok {
		return nil, false
	}
	return &sess.User, true
}
