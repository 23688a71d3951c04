package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"projectbuilder/config"
	"projectbuilder/templates"
	"projectbuilder/testhelpers"
)

func TestGetNavData_FromContext(t *testing.T) {
	req := withNav(httptest.NewRequest(http.MethodGet, "/", nil),
		templates.NavData{OwnerGateEnabled: true, OwnerUnlocked: true})

	got := GetNavData(req)
	if !got.OwnerGateEnabled || !got.OwnerUnlocked {
		t.Errorf("unexpected nav data %+v", got)
	}
}

func TestGetNavData_NotInContext(t *testing.T) {
	got := GetNavData(httptest.NewRequest(http.MethodGet, "/", nil))
	if got.OwnerGateEnabled || got.OwnerUnlocked || got.Estimate != nil {
		t.Errorf("expected zero nav data, got %+v", got)
	}
	if !got.OwnerVisible() {
		t.Error("owner tabs are visible when no gate is configured")
	}
}

func TestOwnerGateMiddleware(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	tests := []struct {
		name        string
		cfg         *config.Config
		cookie      string
		wantEnabled bool
		wantVisible bool
		wantCleared bool
	}{
		{"gate disabled", &config.Config{}, "", false, true, false},
		{"locked without cookie", testConfig(), "", true, false, false},
		{"unlocked with valid cookie", testConfig(), ownerToken("1234"), true, true, false},
		{"stale cookie cleared", testConfig(), ownerToken("old-code"), true, false, true},
		{"cookie while gate disabled cleared", &config.Config{}, ownerToken("1234"), false, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/estimates", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: ownerCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := OwnerGateMiddleware(tt.cfg)(e); err != nil {
				t.Fatalf("middleware error: %v", err)
			}

			nav := GetNavData(e.Request)
			if nav.OwnerGateEnabled != tt.wantEnabled {
				t.Errorf("OwnerGateEnabled = %v, want %v", nav.OwnerGateEnabled, tt.wantEnabled)
			}
			if nav.OwnerVisible() != tt.wantVisible {
				t.Errorf("OwnerVisible() = %v, want %v", nav.OwnerVisible(), tt.wantVisible)
			}
			cleared := findCookie(rec, ownerCookieName) != nil
			if cleared != tt.wantCleared {
				t.Errorf("cookie cleared = %v, want %v", cleared, tt.wantCleared)
			}
		})
	}
}
