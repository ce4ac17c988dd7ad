package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/respond"
	"github.com/recordkeep/records-api/internal/core/domain"
)

func runAdmission(t *testing.T, level Access, userID, role string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(KeyUserID, userID)
		c.Set(KeyRole, role)
	}

	reached := false
	handler := Admission(level)(func(c echo.Context) error {
		reached = true
		return respond.OK(c, nil)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, reached
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) respond.Envelope {
	t.Helper()

	var env respond.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("malformed envelope: %v", err)
	}
	return env
}

func TestAdmission_PublicAdmitsAnonymous(t *testing.T) {
	rec, reached := runAdmission(t, AccessPublic, "", "")
	if !reached {
		t.Fatalf("handler not reached")
	}
	if env := decodeEnvelope(t, rec); env.Status != domain.StatusSuccess {
		t.Fatalf("status = %d", env.Status)
	}
}

func TestAdmission_SessionRejectsAnonymous(t *testing.T) {
	rec, reached := runAdmission(t, AccessSession, "", "")
	if reached {
		t.Fatalf("handler reached by anonymous caller")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("http status = %d, want 200", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Status != domain.StatusAccessDenied {
		t.Fatalf("status = %d, want %d", env.Status, domain.StatusAccessDenied)
	}
}

func TestAdmission_SessionAdmitsNormalUser(t *testing.T) {
	_, reached := runAdmission(t, AccessSession, "alice", domain.RoleNormal)
	if !reached {
		t.Fatalf("handler not reached")
	}
}

func TestAdmission_AdminRejectsNormalUser(t *testing.T) {
	rec, reached := runAdmission(t, AccessAdmin, "alice", domain.RoleNormal)
	if reached {
		t.Fatalf("handler reached without admin role")
	}
	if env := decodeEnvelope(t, rec); env.Status != domain.StatusAccessDenied {
		t.Fatalf("status = %d, want %d", env.Status, domain.StatusAccessDenied)
	}
}

func TestAdmission_AdminAdmitsAdmin(t *testing.T) {
	_, reached := runAdmission(t, AccessAdmin, "root", domain.RoleAdmin)
	if !reached {
		t.Fatalf("handler not reached")
	}
}
