package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"projectbuilder/testhelpers"
)

func sheetPath(id string, extra map[string]string) map[string]string {
	pv := map[string]string{"id": id, "sheet": "0"}
	for k, v := range extra {
		pv[k] = v
	}
	return pv
}

func TestHandleLineUpdate_QtyPersistsAndRerenders(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "Line Update")

	req := formRequest(http.MethodPost, "/estimates/"+est.Id+"/sheets/0/lines/0",
		url.Values{"qty": {"100"}}, sheetPath(est.Id, map[string]string{"line": "0"}))
	rec, err := serve(app, HandleLineUpdate(app), req)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// 100 sq ft: 131.25 materials with waste, 8.25 labor
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "$139.50", `id="totals-bar"`, `hx-swap-oob="true"`)

	p := testhelpers.MustLoadEstimate(t, app, est.Id)
	if got := p.Sheets[0].Lines[0].Qty; got != 100 {
		t.Errorf("expected qty 100, got %v", got)
	}
}

func TestHandleLineUpdate_MultipleFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "Line Fields")

	form := url.Values{
		"desc":  {"Accent wall"},
		"notes": {"Navy blue"},
		"rate":  {"80"},
	}
	req := formRequest(http.MethodPost, "/estimates/"+est.Id+"/sheets/0/lines/4", form,
		sheetPath(est.Id, map[string]string{"line": "4"}))
	if _, err := serve(app, HandleLineUpdate(app), req); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	line := testhelpers.MustLoadEstimate(t, app, est.Id).Sheets[0].Lines[4]
	if line.Desc != "Accent wall" || line.Notes != "Navy blue" {
		t.Errorf("unexpected line text %q / %q", line.Desc, line.Notes)
	}
	if line.Rate == nil || *line.Rate != 80 {
		t.Errorf("expected rate 80, got %v", line.Rate)
	}
}

func TestHandleLineUpdate_Errors(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "Line Errors")

	tests := []struct {
		name   string
		form   url.Values
		sheet  string
		line   string
		status int
	}{
		{"no known field", url.Values{"color": {"red"}}, "0", "0", http.StatusBadRequest},
		{"line out of range", url.Values{"qty": {"1"}}, "0", "99", http.StatusNotFound},
		{"sheet out of range", url.Values{"qty": {"1"}}, "9", "0", http.StatusNotFound},
		{"bad line index", url.Values{"qty": {"1"}}, "0", "x", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := formRequest(http.MethodPost, "/estimates/x/sheets/y/lines/z", tt.form,
				map[string]string{"id": est.Id, "sheet": tt.sheet, "line": tt.line})
			rec, err := serve(app, HandleLineUpdate(app), req)
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}

	p := testhelpers.MustLoadEstimate(t, app, est.Id)
	if p.Sheets[0].Lines[0].Qty != 0 {
		t.Error("failed edits must not change the estimate")
	}
}

func TestHandleLineDims_DrivesQty(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "Dims")
	pv := sheetPath(est.Id, map[string]string{"line": "0"})

	req := formRequest(http.MethodPost, "/lines/0/dims", url.Values{"useDims": {"on"}}, pv)
	if _, err := serve(app, HandleLineDims(app), req); err != nil {
		t.Fatalf("dims handler error: %v", err)
	}
	if !testhelpers.MustLoadEstimate(t, app, est.Id).Sheets[0].Lines[0].UseDims {
		t.Fatal("expected useDims on")
	}

	req = formRequest(http.MethodPost, "/lines/0", url.Values{"dimL": {"10"}, "dimW": {"4"}}, pv)
	rec, err := serve(app, HandleLineUpdate(app), req)
	if err != nil {
		t.Fatalf("update handler error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `name="dimL"`, `name="dimW"`)

	if got := testhelpers.MustLoadEstimate(t, app, est.Id).Sheets[0].Lines[0].Qty; got != 40 {
		t.Errorf("expected qty 40 from 10 x 4, got %v", got)
	}

	req = formRequest(http.MethodPost, "/lines/0/dims", url.Values{}, pv)
	if _, err := serve(app, HandleLineDims(app), req); err != nil {
		t.Fatalf("dims handler error: %v", err)
	}
	line := testhelpers.MustLoadEstimate(t, app, est.Id).Sheets[0].Lines[0]
	if line.UseDims {
		t.Error("expected useDims off after unchecking")
	}
	if line.Qty != 40 {
		t.Errorf("expected qty to stay 40, got %v", line.Qty)
	}
}

func TestHandleLineDuplicate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "Duplicate")
	before := testhelpers.MustLoadEstimate(t, app, est.Id).Sheets[0].Lines

	req := formRequest(http.MethodPost, "/lines/0/duplicate", nil, sheetPath(est.Id, map[string]string{"line": "0"}))
	if _, err := serve(app, HandleLineDuplicate(app), req); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	after := testhelpers.MustLoadEstimate(t, app, est.Id).Sheets[0].Lines
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d lines, got %d", len(before)+1, len(after))
	}
	if after[1].Desc != before[0].Desc {
		t.Errorf("expected copy below original, got %q", after[1].Desc)
	}
}

func TestHandleLineDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "Delete Line")
	before := testhelpers.MustLoadEstimate(t, app, est.Id).Sheets[0].Lines

	req := formRequest(http.MethodDelete, "/lines/0", nil, sheetPath(est.Id, map[string]string{"line": "0"}))
	if _, err := serve(app, HandleLineDelete(app), req); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	after := testhelpers.MustLoadEstimate(t, app, est.Id).Sheets[0].Lines
	if len(after) != len(before)-1 {
		t.Fatalf("expected %d lines, got %d", len(before)-1, len(after))
	}
	if after[0].Desc != before[1].Desc {
		t.Errorf("expected %q first, got %q", before[1].Desc, after[0].Desc)
	}
}

func TestHandleAddCustomLine_UsesEffectiveRate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "Custom Line")

	req := formRequest(http.MethodPost, "/lines/custom", url.Values{"useGlobalRate": {""}, "sheetRate": {"72"}}, sheetPath(est.Id, nil))
	if _, err := serve(app, HandleSheetRate(app), req); err != nil {
		t.Fatalf("rate handler error: %v", err)
	}

	req = formRequest(http.MethodPost, "/lines/custom", nil, sheetPath(est.Id, nil))
	if _, err := serve(app, HandleAddCustomLine(app), req); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	lines := testhelpers.MustLoadEstimate(t, app, est.Id).Sheets[0].Lines
	last := lines[len(lines)-1]
	if !last.Custom {
		t.Error("expected a custom line")
	}
	if last.Rate == nil || *last.Rate != 72 {
		t.Errorf("expected rate 72, got %v", last.Rate)
	}
}

func TestHandleAddStandardLine(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "Standard Line")

	req := formRequest(http.MethodPost, "/lines/standard", url.Values{"std": {"1"}}, sheetPath(est.Id, nil))
	if _, err := serve(app, HandleAddStandardLine(app), req); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	lines := testhelpers.MustLoadEstimate(t, app, est.Id).Sheets[0].Lines
	if got := lines[len(lines)-1].Desc; got != "Ceilings (sq ft)" {
		t.Errorf("expected Ceilings line appended, got %q", got)
	}
}

func TestHandleAddStandardLine_Invalid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "Standard Invalid")

	for _, std := range []string{"99", "abc", ""} {
		req := formRequest(http.MethodPost, "/lines/standard", url.Values{"std": {std}}, sheetPath(est.Id, nil))
		rec, err := serve(app, HandleAddStandardLine(app), req)
		if err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("std %q: expected 400, got %d", std, rec.Code)
		}
	}
}

func TestHandleSheetRate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "Sheet Rate")

	req := formRequest(http.MethodPost, "/rate", url.Values{"sheetRate": {"70"}}, sheetPath(est.Id, nil))
	if _, err := serve(app, HandleSheetRate(app), req); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	s := testhelpers.MustLoadEstimate(t, app, est.Id).Sheets[0]
	if s.UseGlobalRate {
		t.Error("expected sheet to use its own rate")
	}
	if s.SheetRate == nil || *s.SheetRate != 70 {
		t.Errorf("expected sheet rate 70, got %v", s.SheetRate)
	}

	req = formRequest(http.MethodPost, "/rate", url.Values{"useGlobalRate": {"on"}}, sheetPath(est.Id, nil))
	if _, err := serve(app, HandleSheetRate(app), req); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	s = testhelpers.MustLoadEstimate(t, app, est.Id).Sheets[0]
	if !s.UseGlobalRate {
		t.Error("expected sheet back on the crew rate")
	}
	if s.SheetRate == nil || *s.SheetRate != 70 {
		t.Error("switching to the crew rate should keep the stored sheet rate")
	}
}
