package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"projectbuilder/services"
	"projectbuilder/testhelpers"
)

func TestHandleSummaryView(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	p := pricedProject()
	p.Inputs.Tax = 10
	est := testhelpers.CreateTestEstimateFrom(t, app, "Summary", p)

	req := httptest.NewRequest(http.MethodGet, "/estimates/"+est.Id+"/summary", nil)
	req.SetPathValue("id", est.Id)
	rec, err := serve(app, HandleSummaryView(app), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// 100 subtotal, 15 markup, 11.50 tax on 115
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Internal Summary",
		"Interior Paint",
		"$100.00",
		"Markup (15%)",
		"$15.00",
		"Tax (10%)",
		"$11.50",
		"$126.50",
	)
}

func TestHandleQuoteView(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	p := pricedProject()
	p.Sheets[0].Lines = append(p.Sheets[0].Lines, services.Line{
		Desc: "Unpriced", Unit: "ea", RateType: services.RateTypeCrew,
	})
	est := testhelpers.CreateTestEstimateFrom(t, app, "Quote", p)

	req := formRequest(http.MethodGet, "/estimates/"+est.Id+"/quote", nil, map[string]string{"id": est.Id})
	rec, err := serve(app, HandleQuoteView(app), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"Jane Client",
		"12 Elm St",
		"Interior Paint - Walls",
		"Two coats",
		"$115.00",
	)
	testhelpers.AssertHTMLNotContains(t, body, "Unpriced", "<!DOCTYPE html>")
}

func TestHandleQuoteView_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/estimates/missing/quote", nil)
	req.SetPathValue("id", "missing")
	rec, err := serve(app, HandleQuoteView(app), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
