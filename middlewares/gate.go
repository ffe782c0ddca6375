package middlewares

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"MediBuddy/models"
)

// Decision is the outcome of the authorization gate for a role-scoped route.
type Decision int

const (
	// DecisionAllow lets the request through to the protected handler.
	DecisionAllow Decision = iota
	// DecisionLoginRedirect sends an unauthenticated client to the login
	// page, carrying the originally requested location.
	DecisionLoginRedirect
	// DecisionDashboardRedirect sends an authenticated but misrouted
	// client to the dashboard matching its actual role.
	DecisionDashboardRedirect
)

// Decide is the gate itself: a pure function over the required role and
// the current session. Rules apply in order: no session means login,
// a role mismatch means the caller's own dashboard, anything else is
// allowed. A denied access is always resolved by redirection, never by
// an error.
func Decide(required models.Role, sess *models.Session) Decision {
	if sess == nil {
		return DecisionLoginRedirect
	}
	if sess.User.Role != required {
		return DecisionDashboardRedirect
	}
	return DecisionAllow
}

// DashboardPath maps a role to its dashboard location.
func DashboardPath(role models.Role) string {
	if role == models.RoleDoctor {
		return "/doctor-dashboard"
	}
	return "/patient-dashboard"
}

// RequireRole applies Decide to each request and turns its decision into
// either pass-through or an HTTP redirect.
func RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := CurrentSession(c)
		switch Decide(required, sess) {
		case DecisionAllow:
			c.Next()
		case DecisionLoginRedirect:
			from := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusSeeOther, "/login?from="+from)
			c.Abort()
		case DecisionDashboardRedirect:
			c.Redirect(http.StatusSeeOther, DashboardPath(sess.User.Role))
			c.Abort()
		}
	}
}
