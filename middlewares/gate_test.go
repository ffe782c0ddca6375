package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"MediBuddy/models"
)

func doctorSession() *models.Session {
	return &models.Session{ID: "s-doc", User: models.User{ID: "d1", Role: models.RoleDoctor}}
}

func patientSession() *models.Session {
	return &models.Session{ID: "s-pat", User: models.User{ID: "p1", Role: models.RolePatient}}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		required models.Role
		sess     *models.Session
		want     Decision
	}{
		{"no session, doctor route", models.RoleDoctor, nil, DecisionLoginRedirect},
		{"no session, patient route", models.RolePatient, nil, DecisionLoginRedirect},
		{"doctor on doctor route", models.RoleDoctor, doctorSession(), DecisionAllow},
		{"patient on patient route", models.RolePatient, patientSession(), DecisionAllow},
		{"patient on doctor route", models.RoleDoctor, patientSession(), DecisionDashboardRedirect},
		{"doctor on patient route", models.RolePatient, doctorSession(), DecisionDashboardRedirect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.required, tt.sess); got != tt.want {
				t.Errorf("Decide(%v, %+v) = %v, want %v", tt.required, tt.sess, got, tt.want)
			}
		})
	}
}

func TestDashboardPath(t *testing.T) {
	if got := DashboardPath(models.RoleDoctor); got != "/doctor-dashboard" {
		t.Errorf("DashboardPath(doctor) = %q", got)
	}
	if got := DashboardPath(models.RolePatient); got != "/patient-dashboard" {
		t.Errorf("DashboardPath(patient) = %q", got)
	}
}

func gateRouter(sess *models.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if sess != nil {
			c.Set(sessionContextKey, sess)
		}
		c.Next()
	})
	r.GET("/doctor-dashboard/appointments", RequireRole(models.RoleDoctor), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRequireRoleRedirectsToLoginWithOrigin(t *testing.T) {
	r := gateRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doctor-dashboard/appointments", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	loc := w.Header().Get("Location")
	want := "/login?from=%2Fdoctor-dashboard%2Fappointments"
	if loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}
}

func TestRequireRoleRedirectsWrongRoleToOwnDashboard(t *testing.T) {
	r := gateRouter(patientSession())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doctor-dashboard/appointments", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != "/patient-dashboard" {
		t.Errorf("Location = %q, want /patient-dashboard", loc)
	}
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	r := gateRouter(doctorSession())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doctor-dashboard/appointments", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
