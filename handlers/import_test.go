package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"projectbuilder/services"
	"projectbuilder/testhelpers"
)

func importRequest(t *testing.T, id string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if content != nil {
		part, err := w.CreateFormFile("document", "estimate.json")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/estimates/"+id+"/import", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", id)
	return req
}

func TestHandleImportJSON_ReplacesEstimate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "Import Target")

	doc, err := services.EncodeDocument(pricedProject())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	rec, err := serve(app, HandleImportJSON(app), importRequest(t, est.Id, doc))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/estimates/"+est.Id)

	p := testhelpers.MustLoadEstimate(t, app, est.Id)
	if p.Inputs.ClientName != "Jane Client" {
		t.Errorf("expected imported client, got %q", p.Inputs.ClientName)
	}
	if len(p.Sheets) != 1 || len(p.Sheets[0].Lines) != 1 {
		t.Errorf("expected the imported sheets to replace the catalog, got %d sheets", len(p.Sheets))
	}
}

func TestHandleImportJSON_InvalidKeepsState(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimateFrom(t, app, "Keep Me", pricedProject())

	tests := []struct {
		name    string
		content []byte
	}{
		{"not json", []byte("this is not json")},
		{"missing sheets", []byte(`{"inputs":{}}`)},
		{"duplicate sheet names", []byte(`{"inputs":{},"sheets":[{"name":"A","lines":[]},{"name":"A","lines":[]}]}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := serve(app, HandleImportJSON(app), importRequest(t, est.Id, tt.content))
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if rec.Body.String() != "Invalid file" {
				t.Errorf("unexpected body %q", rec.Body.String())
			}
		})
	}

	p := testhelpers.MustLoadEstimate(t, app, est.Id)
	if p.Inputs.ClientName != "Jane Client" || len(p.Sheets[0].Lines) != 1 {
		t.Error("rejected imports must leave the estimate untouched")
	}
}

func TestHandleImportJSON_NoFile(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	est := testhelpers.CreateTestEstimate(t, app, "No File")

	rec, err := serve(app, HandleImportJSON(app), importRequest(t, est.Id, nil))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleImportJSON_UnknownEstimate(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	doc, err := services.EncodeDocument(pricedProject())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	rec, err := serve(app, HandleImportJSON(app), importRequest(t, "nonexistent", doc))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
