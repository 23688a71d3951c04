package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"projectbuilder/config"
	"projectbuilder/services"
	"projectbuilder/templates"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// formRequest builds an HTMX form post with the given path values set.
func formRequest(method, target string, form url.Values, pathValues map[string]string) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("HX-Request", "true")
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	return req
}

// serve runs handler against req and returns the recorder.
func serve(app *pocketbase.PocketBase, handler func(*core.RequestEvent) error, req *http.Request) (*httptest.ResponseRecorder, error) {
	rec := httptest.NewRecorder()
	err := handler(newTestRequestEvent(app, req, rec))
	return rec, err
}

// withNav attaches owner gate state the way OwnerGateMiddleware does.
func withNav(req *http.Request, nav templates.NavData) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), NavDataKey, nav))
}

func testConfig() *config.Config {
	return &config.Config{OwnerCode: "1234", LogLevel: "info", ExportBaseName: "project_estimate"}
}

// pricedProject is a one-line estimate whose pre-markup subtotal is $100.
func pricedProject() services.Project {
	return services.Project{
		Inputs: services.ProjectInputs{
			ClientName:     "Jane Client",
			ProjectAddress: "12 Elm St",
			CrewRate:       55,
			Markup:         15,
		},
		Sheets: []services.Sheet{{
			Name:          "Interior Paint",
			UseGlobalRate: true,
			Lines: []services.Line{{
				Desc:     "Walls",
				Unit:     "ea",
				Qty:      1,
				MatUnit:  100,
				RateType: services.RateTypeCrew,
				Notes:    "Two coats",
			}},
		}},
	}
}
