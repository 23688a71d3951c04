// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"projectbuilder/collections"
	"projectbuilder/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestEstimate stores a blank catalog estimate with the given name and
// returns its record.
func CreateTestEstimate(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()
	return CreateTestEstimateFrom(t, app, name, services.DefaultProject())
}

// CreateTestEstimateFrom stores p as an estimate with the given name.
func CreateTestEstimateFrom(t *testing.T, app *pocketbase.PocketBase, name string, p services.Project) *core.Record {
	t.Helper()

	record, err := services.CreateEstimate(app, name, p)
	if err != nil {
		t.Fatalf("failed to save test estimate: %v", err)
	}
	return record
}

// MustLoadEstimate loads the estimate with the given id or fails the test.
func MustLoadEstimate(t *testing.T, app *pocketbase.PocketBase, id string) services.Project {
	t.Helper()

	p, _, err := services.LoadEstimate(app, id)
	if err != nil {
		t.Fatalf("failed to load estimate %s: %v", id, err)
	}
	return p
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
