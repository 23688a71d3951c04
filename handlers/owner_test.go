package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"projectbuilder/config"
	"projectbuilder/testhelpers"
)

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestOwnerToken(t *testing.T) {
	a := ownerToken("1234")
	if len(a) != 32 {
		t.Errorf("expected 32 hex chars, got %d", len(a))
	}
	if a != ownerToken("1234") {
		t.Error("token must be stable for the same code")
	}
	if a == ownerToken("4321") {
		t.Error("different codes must give different tokens")
	}
	if a == "1234" {
		t.Error("token must not be the code itself")
	}
}

func TestHandleOwnerUnlock_CorrectCode(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := testConfig()

	req := formRequest(http.MethodPost, "/owner/unlock", url.Values{"code": {"1234"}}, nil)
	req.Header.Set("Referer", "/estimates/abc/sheets/0")
	rec, err := serve(app, HandleOwnerUnlock(cfg), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/estimates/abc/sheets/0")

	c := findCookie(rec, ownerCookieName)
	if c == nil {
		t.Fatal("expected owner cookie to be set")
	}
	if c.Value != ownerToken(cfg.OwnerCode) {
		t.Errorf("unexpected cookie value %q", c.Value)
	}
	if !c.HttpOnly {
		t.Error("expected HttpOnly owner cookie")
	}
}

func TestHandleOwnerUnlock_Rejected(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	tests := []struct {
		name string
		cfg  *config.Config
		code string
	}{
		{"wrong code", testConfig(), "9999"},
		{"empty code", testConfig(), ""},
		{"gate disabled", &config.Config{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := formRequest(http.MethodPost, "/owner/unlock", url.Values{"code": {tt.code}}, nil)
			rec, err := serve(app, HandleOwnerUnlock(tt.cfg), req)
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusForbidden {
				t.Errorf("expected 403, got %d", rec.Code)
			}
			if findCookie(rec, ownerCookieName) != nil {
				t.Error("no owner cookie expected on rejection")
			}
		})
	}
}

func TestHandleOwnerLock(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/owner/lock", nil)
	rec, err := serve(app, HandleOwnerLock(), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected 303 for a plain form post, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/estimates" {
		t.Errorf("expected fallback redirect to /estimates, got %q", loc)
	}

	c := findCookie(rec, ownerCookieName)
	if c == nil || c.Value != "" || c.MaxAge >= 0 {
		t.Errorf("expected owner cookie cleared, got %+v", c)
	}
}
