package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"projectbuilder/services"
	"projectbuilder/testhelpers"
)

func TestHandleEstimateList_ShowsEstimates(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestEstimateFrom(t, app, "Kitchen Repaint", pricedProject())
	testhelpers.CreateTestEstimate(t, app, "Blank Estimate")

	req := httptest.NewRequest(http.MethodGet, "/estimates", nil)
	rec, err := serve(app, HandleEstimateList(app), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"<!DOCTYPE html>",
		"Kitchen Repaint",
		"Jane Client",
		"12 Elm St",
		"$115.00",
		"Blank Estimate",
	)
}

func TestHandleEstimateList_HTMXFragment(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestEstimate(t, app, "Fragment Estimate")

	req := httptest.NewRequest(http.MethodGet, "/estimates", nil)
	req.Header.Set("HX-Request", "true")
	rec, err := serve(app, HandleEstimateList(app), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, `id="estimate-list"`, "Fragment Estimate")
	testhelpers.AssertHTMLNotContains(t, body, "<!DOCTYPE html>")
}

func TestHandleEstimateCreate_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := formRequest(http.MethodPost, "/estimates", url.Values{"name": {"Basement"}}, nil)
	rec, err := serve(app, HandleEstimateCreate(app), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}

	list, err := services.ListEstimates(app)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Basement" {
		t.Fatalf("expected one estimate named Basement, got %+v", list)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/estimates/"+list[0].ID)

	p := testhelpers.MustLoadEstimate(t, app, list[0].ID)
	if len(p.Sheets) != len(services.DefaultProject().Sheets) {
		t.Errorf("expected blank catalog sheets, got %d", len(p.Sheets))
	}
}

func TestHandleEstimateCreate_MissingName(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := formRequest(http.MethodPost, "/estimates", url.Values{"name": {"   "}}, nil)
	rec, err := serve(app, HandleEstimateCreate(app), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Error("expected HX-Reswap none on error")
	}
}

func TestHandleEstimateDelete_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "Delete Me")

	req := formRequest(http.MethodDelete, "/estimates/"+est.Id, nil, map[string]string{"id": est.Id})
	rec, err := serve(app, HandleEstimateDelete(app), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if _, err := app.FindRecordById(services.EstimatesCollection, est.Id); err == nil {
		t.Error("expected estimate to be deleted")
	}
}

func TestHandleEstimateDelete_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := formRequest(http.MethodDelete, "/estimates/nonexistent", nil, map[string]string{"id": "nonexistent"})
	rec, err := serve(app, HandleEstimateDelete(app), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
